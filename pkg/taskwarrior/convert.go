package taskwarrior

import "github.com/harrisonrobin/chore/pkg/model"

// ToTasks converts exported tasks, dropping deleted ones and recurrence
// templates. Scheduled and due together form an event, due alone a
// deadline; anything else is a todo. Times are converted to local wall-clock
// time.
func ToTasks(tw []Task) []model.Task {
	var tasks []model.Task
	for _, t := range tw {
		if t.Status == DELETED || t.Status == RECURRING || t.Description == "" {
			continue
		}

		var task model.Task
		switch {
		case t.Scheduled.set() && t.Due.set() && !t.Scheduled.After(t.Due.Time):
			task = model.NewEvent(t.Description, model.Wall(t.Scheduled.Time), model.Wall(t.Due.Time))
		case t.Due.set():
			task = model.NewDeadline(t.Description, model.Wall(t.Due.Time))
		default:
			task = model.NewToDo(t.Description)
		}
		if t.Status == COMPLETED {
			task.MarkDone()
		}
		tasks = append(tasks, task)
	}
	return tasks
}
