package command

import (
	"fmt"
	"slices"
	"time"

	"github.com/harrisonrobin/chore/pkg/model"
	"github.com/harrisonrobin/chore/pkg/tasklist"
)

// Command is one parsed user intent. The set of implementations is closed;
// Execute handles each of them.
type Command interface {
	command()
}

type (
	Bye  struct{}
	List struct{}
	Find struct{ Keyword string }
)

// Mark, Unmark and Delete carry a 1-based task position.
type (
	Mark   struct{ Index int }
	Unmark struct{ Index int }
	Delete struct{ Index int }
)

type AddToDo struct{ Name string }

type AddDeadline struct {
	Name string
	By   time.Time
}

type AddEvent struct {
	Name     string
	From, To time.Time
}

func (Bye) command() {}
func (List) command() {}
func (Find) command() {}
func (Mark) command() {}
func (Unmark) command() {}
func (Delete) command() {}
func (AddToDo) command() {}
func (AddDeadline) command() {}
func (AddEvent) command() {}

// Saver persists the full task list.
type Saver interface {
	Save(tasks []model.Task) error
}

// Presenter turns the outcome of a command into user-facing text.
type Presenter interface {
	Added(task model.Task, count int) string
	Marked(task model.Task) string
	Unmarked(task model.Task) string
	Deleted(task model.Task, count int) string
	Listed(tasks []model.Task) string
	Found(tasks []model.Task) string
	Farewell() string
}

// Result is what a command produced.
type Result struct {
	Text string
	// Exit is set by Bye; the session stops reading input.
	Exit bool
}

// SaveError means the list was changed in memory but could not be written.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return fmt.Sprintf("task saved in memory only: %v", e.Err) }
func (e *SaveError) Unwrap() error { return e.Err }

// Execute applies cmd to list. Commands that change the list save it
// afterwards; a failed save is returned as *SaveError together with the
// normal result, and the change is kept.
func Execute(cmd Command, list *tasklist.List, saver Saver, ui Presenter) (Result, error) {
	var text string
	switch c := cmd.(type) {
	case Bye:
		return Result{Text: ui.Farewell(), Exit: true}, nil
	case List:
		return Result{Text: ui.Listed(list.Tasks())}, nil
	case Find:
		return Result{Text: ui.Found(slices.Collect(list.Find(c.Keyword)))}, nil
	case Mark:
		task, err := list.Mark(c.Index)
		if err != nil {
			return Result{}, err
		}
		text = ui.Marked(task)
	case Unmark:
		task, err := list.Unmark(c.Index)
		if err != nil {
			return Result{}, err
		}
		text = ui.Unmarked(task)
	case Delete:
		task, err := list.Delete(c.Index)
		if err != nil {
			return Result{}, err
		}
		text = ui.Deleted(task, list.Count())
	case AddToDo:
		text = ui.Added(list.Add(model.NewToDo(c.Name)))
	case AddDeadline:
		text = ui.Added(list.Add(model.NewDeadline(c.Name, c.By)))
	case AddEvent:
		text = ui.Added(list.Add(model.NewEvent(c.Name, c.From, c.To)))
	default:
		return Result{}, fmt.Errorf("unhandled command %T", cmd)
	}

	if err := saver.Save(list.Tasks()); err != nil {
		return Result{Text: text}, &SaveError{Err: err}
	}
	return Result{Text: text}, nil
}
