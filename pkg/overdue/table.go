package overdue

import (
	"time"

	"github.com/harrisonrobin/chore/pkg/model"
	"github.com/harrisonrobin/chore/pkg/tasklist"
)

// Entry is a deadline that has passed while its task is still open.
type Entry struct {
	Position int
	Task     *model.Deadline
	Late     time.Duration
}

// Sweep returns the open deadlines in list whose due time is before now, in
// list order. now is compared as wall-clock time, like task timestamps.
func Sweep(list *tasklist.List, now time.Time) []Entry {
	wall := model.Wall(now)
	var swept []Entry
	for pos, task := range list.All() {
		d, ok := task.(*model.Deadline)
		if !ok || d.IsDone() {
			continue
		}
		if d.By.Before(wall) {
			swept = append(swept, Entry{Position: pos, Task: d, Late: wall.Sub(d.By)})
		}
	}
	return swept
}
