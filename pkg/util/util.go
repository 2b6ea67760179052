package util

import (
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/harrisonrobin/chore/pkg/index"
	"github.com/harrisonrobin/chore/pkg/model"
)

const (
	// KeyProperty is the private extended property holding index.KeyFor.
	KeyProperty = "chore_key"

	defaultDuration = 30 * time.Minute

	deadlineColorID = "11" // tomato
	eventColorID    = "9"  // blueberry
	doneColorID     = "8"  // graphite
)

// ConvertTaskToCalendarEvent builds the calendar event mirroring task. Only
// deadlines and events can be mirrored. Wall-clock task times are placed in
// the local zone.
func ConvertTaskToCalendarEvent(task model.Task, now time.Time) (*calendar.Event, error) {
	var start, end time.Time
	colorID := ""
	overdue := false

	switch t := task.(type) {
	case *model.Deadline:
		start = localize(t.By)
		end = start.Add(defaultDuration)
		colorID = deadlineColorID
		overdue = start.Before(now)
	case *model.Event:
		start = localize(t.From)
		end = localize(t.To)
		if !end.After(start) {
			end = start.Add(defaultDuration)
		}
		colorID = eventColorID
		overdue = end.Before(now)
	case nil:
		return nil, fmt.Errorf("could not convert nil task")
	default:
		return nil, fmt.Errorf("task %q has no date to put on a calendar", task.Name())
	}

	summary := task.Name()
	if task.IsDone() {
		summary = "✓ " + summary
		colorID = doneColorID
	} else if overdue {
		summary = "! " + summary
	}

	return &calendar.Event{
		Summary:     summary,
		ColorId:     colorID,
		Description: fmt.Sprintf("Status: %s\nRecord: %s\n", status(task), task.DataLine()),
		Start:       &calendar.EventDateTime{DateTime: start.UTC().Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: end.UTC().Format(time.RFC3339)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{KeyProperty: index.KeyFor(task)},
		},
	}, nil
}

// EventNeedsUpdate returns a patch holding the fields of target that differ
// from existing, or nil when they already match.
func EventNeedsUpdate(existing, target *calendar.Event) (*calendar.Event, error) {
	patch := &calendar.Event{}
	needsUpdate := false

	if existing.Summary != target.Summary {
		patch.Summary = target.Summary
		needsUpdate = true
	}
	if existing.Description != target.Description {
		patch.Description = target.Description
		needsUpdate = true
	}
	if existing.ColorId != target.ColorId {
		patch.ColorId = target.ColorId
		needsUpdate = true
	}

	sameStart, err := sameInstant(existing.Start, target.Start)
	if err != nil {
		return nil, err
	}
	sameEnd, err := sameInstant(existing.End, target.End)
	if err != nil {
		return nil, err
	}
	if !sameStart || !sameEnd {
		patch.Start = target.Start
		patch.End = target.End
		needsUpdate = true
	}

	if needsUpdate {
		return patch, nil
	}
	return nil, nil
}

func sameInstant(a, b *calendar.EventDateTime) (bool, error) {
	if a == nil || b == nil {
		return a == b, nil
	}
	ta, err := time.Parse(time.RFC3339, a.DateTime)
	if err != nil {
		return false, err
	}
	tb, err := time.Parse(time.RFC3339, b.DateTime)
	if err != nil {
		return false, err
	}
	return ta.Equal(tb), nil
}

func localize(wall time.Time) time.Time {
	return time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), 0, 0, time.Local)
}

func status(task model.Task) string {
	if task.IsDone() {
		return "done"
	}
	return "open"
}
