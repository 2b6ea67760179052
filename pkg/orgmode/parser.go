package orgmode

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/harrisonrobin/chore/pkg/model"
)

var (
	headingRegex  = regexp.MustCompile(`^\*+\s+(TODO|DONE)\s+(?:\[#[A-Z]\]\s*)?(.*?)(?:\s+:[\w@:]+:)?\s*$`)
	deadlineRegex = regexp.MustCompile(`DEADLINE:\s*<([^>]+)>`)
	rangeRegex    = regexp.MustCompile(`<([^>]+)>--<([^>]+)>`)
	stampRegex    = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?:\s+[A-Za-z]{2,3}\.?)?(?:\s+(\d{1,2}:\d{2}))?`)
)

// ParseFiles parses each Org-mode file in turn and returns their tasks in order.
func ParseFiles(filePaths []string) ([]model.Task, error) {
	var allTasks []model.Task
	for _, filePath := range filePaths {
		tasks, err := parseFile(filePath)
		if err != nil {
			return nil, err
		}
		allTasks = append(allTasks, tasks...)
	}
	return allTasks, nil
}

func parseFile(filePath string) ([]model.Task, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

type heading struct {
	name     string
	done     bool
	deadline *time.Time
	from, to *time.Time
}

func (h *heading) task() model.Task {
	var task model.Task
	switch {
	case h.deadline != nil:
		task = model.NewDeadline(h.name, *h.deadline)
	case h.from != nil:
		task = model.NewEvent(h.name, *h.from, *h.to)
	default:
		task = model.NewToDo(h.name)
	}
	if h.done {
		task.MarkDone()
	}
	return task
}

// Parse reads TODO and DONE headings. A heading with a DEADLINE becomes a
// deadline, one with an active time range becomes an event, and any other
// becomes a todo. Headings without a title are skipped.
func Parse(r io.Reader) ([]model.Task, error) {
	scanner := bufio.NewScanner(r)
	var tasks []model.Task
	var current *heading

	flush := func() {
		if current != nil && current.name != "" {
			tasks = append(tasks, current.task())
		}
		current = nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "*") {
			flush()
			if matches := headingRegex.FindStringSubmatch(line); matches != nil {
				current = &heading{name: strings.TrimSpace(matches[2]), done: matches[1] == "DONE"}
			}
			continue
		}
		if current == nil {
			continue
		}

		if matches := deadlineRegex.FindStringSubmatch(line); matches != nil && current.deadline == nil {
			if t, ok := parseStamp(matches[1]); ok {
				current.deadline = &t
			}
		}
		if matches := rangeRegex.FindStringSubmatch(line); matches != nil && current.from == nil {
			from, okFrom := parseStamp(matches[1])
			to, okTo := parseStamp(matches[2])
			if okFrom && okTo {
				current.from, current.to = &from, &to
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// parseStamp reads the date and optional time of an Org timestamp body such
// as "2023-07-08 Sat 23:59". A missing time means midnight.
func parseStamp(s string) (time.Time, bool) {
	matches := stampRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return time.Time{}, false
	}
	layout, value := "2006-01-02", matches[1]
	if matches[2] != "" {
		layout, value = "2006-01-02 15:04", matches[1]+" "+matches[2]
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
