package tasklist

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/harrisonrobin/chore/pkg/model"
)

// ErrIndexOutOfRange is wrapped by every IndexError.
var ErrIndexOutOfRange = errors.New("task number out of range")

// IndexError reports a 1-based position outside [1, Count].
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("task %d does not exist, the list is empty", e.Index)
	}
	return fmt.Sprintf("task %d does not exist, pick a number from 1 to %d", e.Index, e.Count)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// List is the ordered task list owned by a session. Positions are 1-based and
// derived from insertion order only.
type List struct {
	tasks []model.Task
}

// New returns a list holding the given tasks in order.
func New(tasks ...model.Task) *List {
	return &List{tasks: slices.Clone(tasks)}
}

// Add appends task and returns it together with the new count.
func (l *List) Add(task model.Task) (model.Task, int) {
	l.tasks = append(l.tasks, task)
	return task, len(l.tasks)
}

func (l *List) Mark(index int) (model.Task, error) {
	task, err := l.at(index)
	if err != nil {
		return nil, err
	}
	task.MarkDone()
	return task, nil
}

func (l *List) Unmark(index int) (model.Task, error) {
	task, err := l.at(index)
	if err != nil {
		return nil, err
	}
	task.MarkUndone()
	return task, nil
}

// Delete removes the task at index. Later tasks move up one position.
func (l *List) Delete(index int) (model.Task, error) {
	task, err := l.at(index)
	if err != nil {
		return nil, err
	}
	l.tasks = slices.Delete(l.tasks, index-1, index)
	return task, nil
}

// Find yields, in list order, the tasks whose name contains substr. Matching
// is case-sensitive. Each range over the result scans the list afresh.
func (l *List) Find(substr string) iter.Seq[model.Task] {
	return func(yield func(model.Task) bool) {
		for _, task := range l.tasks {
			if strings.Contains(task.Name(), substr) && !yield(task) {
				return
			}
		}
	}
}

func (l *List) Count() int { return len(l.tasks) }

// Tasks returns a copy of the list contents.
func (l *List) Tasks() []model.Task {
	return slices.Clone(l.tasks)
}

// All yields each task with its 1-based position.
func (l *List) All() iter.Seq2[int, model.Task] {
	return func(yield func(int, model.Task) bool) {
		for i, task := range l.tasks {
			if !yield(i+1, task) {
				return
			}
		}
	}
}

func (l *List) at(index int) (model.Task, error) {
	if index < 1 || index > len(l.tasks) {
		return nil, &IndexError{Index: index, Count: len(l.tasks)}
	}
	return l.tasks[index-1], nil
}
