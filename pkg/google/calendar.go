package google

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"

	"github.com/harrisonrobin/chore/pkg/index"
	"github.com/harrisonrobin/chore/pkg/model"
	"github.com/harrisonrobin/chore/pkg/util"
)

// CalendarClient mirrors deadlines and events into one Google Calendar.
type CalendarClient struct {
	srv        *calendar.Service
	calendarID string
	index      *index.EventIndex
	// Now defaults to time.Now; used to flag overdue tasks.
	Now func() time.Time
}

func NewCalendarClient(srv *calendar.Service, calendarID string, idx *index.EventIndex) *CalendarClient {
	return &CalendarClient{srv: srv, calendarID: calendarID, index: idx, Now: time.Now}
}

// SyncReport counts what a Sync did.
type SyncReport struct {
	Created   int
	Updated   int
	Unchanged int
	Deleted   int
	Failed    int
}

// Sync mirrors every deadline and event in tasks and deletes mirrored events
// whose task is gone. Individual failures are logged and counted; the index
// is saved at the end in any case.
func (c *CalendarClient) Sync(ctx context.Context, tasks []model.Task) (SyncReport, error) {
	var report SyncReport
	live := make(map[string]bool)

	for _, task := range tasks {
		if task.Kind() == model.KindToDo {
			continue
		}
		key := index.KeyFor(task)
		if live[key] {
			// Identical duplicates share one calendar event.
			continue
		}
		live[key] = true

		outcome, err := c.SyncTask(ctx, task)
		if err != nil {
			log.Printf("Sync: error mirroring %q: %v", task.Name(), err)
			report.Failed++
			continue
		}
		switch outcome {
		case Created:
			report.Created++
		case Updated:
			report.Updated++
		default:
			report.Unchanged++
		}
	}

	if c.index != nil {
		for _, key := range c.index.Keys() {
			if live[key] {
				continue
			}
			if err := c.DeleteEvent(ctx, c.index.Get(key)); err != nil {
				log.Printf("Sync: error deleting event %s: %v", c.index.Get(key), err)
				report.Failed++
				continue
			}
			c.index.Remove(key)
			report.Deleted++
		}
		if err := c.index.Save(); err != nil {
			return report, fmt.Errorf("failed to save event index: %w", err)
		}
	}
	return report, nil
}

// Outcome says what SyncTask did to the calendar.
type Outcome int

const (
	Unchanged Outcome = iota
	Created
	Updated
)

// SyncTask creates or patches the event mirroring task.
func (c *CalendarClient) SyncTask(ctx context.Context, task model.Task) (Outcome, error) {
	target, err := util.ConvertTaskToCalendarEvent(task, c.Now())
	if err != nil {
		return Unchanged, err
	}
	key := index.KeyFor(task)

	var existing *calendar.Event
	if c.index != nil {
		if eventID := c.index.Get(key); eventID != "" {
			existing, err = c.srv.Events.Get(c.calendarID, eventID).Context(ctx).Do()
			if err != nil || existing.Status == "cancelled" {
				existing = nil
			}
		}
	}
	if existing == nil {
		existing, err = c.GetEventByKey(ctx, key)
		if err != nil {
			return Unchanged, fmt.Errorf("error searching for event: %w", err)
		}
	}

	if existing == nil {
		event, err := c.srv.Events.Insert(c.calendarID, target).Context(ctx).Do()
		if err != nil {
			return Unchanged, err
		}
		c.remember(key, event.Id)
		return Created, nil
	}

	c.remember(key, existing.Id)
	patch, err := util.EventNeedsUpdate(existing, target)
	if err != nil {
		return Unchanged, fmt.Errorf("could not compare task with its calendar event: %w", err)
	}
	if patch == nil {
		return Unchanged, nil
	}
	if _, err := c.PatchEvent(ctx, existing.Id, patch); err != nil {
		return Unchanged, err
	}
	return Updated, nil
}

func (c *CalendarClient) remember(key, eventID string) {
	if c.index != nil {
		c.index.Set(key, eventID)
	}
}

func (c *CalendarClient) PatchEvent(ctx context.Context, eventID string, patch *calendar.Event) (*calendar.Event, error) {
	return c.srv.Events.Patch(c.calendarID, eventID, patch).Context(ctx).Do()
}

// DeleteEvent removes an event. An event that is already gone is not an error.
func (c *CalendarClient) DeleteEvent(ctx context.Context, eventID string) error {
	err := c.srv.Events.Delete(c.calendarID, eventID).Context(ctx).Do()
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone) {
		return nil
	}
	return err
}

// GetEventByKey finds the event carrying key in its private properties.
func (c *CalendarClient) GetEventByKey(ctx context.Context, key string) (*calendar.Event, error) {
	events, err := c.srv.Events.List(c.calendarID).
		PrivateExtendedProperty(fmt.Sprintf("%s=%s", util.KeyProperty, key)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(events.Items) > 0 {
		return events.Items[0], nil
	}
	return nil, nil
}
