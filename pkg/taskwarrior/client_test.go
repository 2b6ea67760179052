package taskwarrior

import (
	"strings"
	"testing"
	"time"

	"github.com/harrisonrobin/chore/pkg/model"
)

const exportArray = `[
	{
		"uuid": "f45a05b3-c12e-42e5-9c9c-333333333333",
		"description": "Buy milk",
		"status": "pending",
		"due": "20230101T120000Z",
		"project": "Groceries",
		"tags": ["buy", "food"]
	},
	{"uuid": "2", "description": "Old chore", "status": "deleted"},
	{
		"uuid": "3",
		"description": "Workshop",
		"status": "completed",
		"scheduled": "20230301T090000Z",
		"due": "20230301T170000Z"
	},
	{"uuid": "4", "description": "Someday", "status": "waiting"}
]`

func TestParseTasksArray(t *testing.T) {
	client := NewClient()
	tw, err := client.ParseTasks(strings.NewReader(exportArray))
	if err != nil {
		t.Fatalf("ParseTasks failed: %v", err)
	}
	if len(tw) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tw))
	}
	if tw[0].UUID != "f45a05b3-c12e-42e5-9c9c-333333333333" || tw[0].Project != "Groceries" || len(tw[0].Tags) != 2 {
		t.Errorf("unexpected first task %+v", tw[0])
	}
	expectedDue, _ := time.Parse(time.RFC3339, "2023-01-01T12:00:00Z")
	if !tw[0].Due.Time.Equal(expectedDue) {
		t.Errorf("Expected Due %v, got %v", expectedDue, tw[0].Due.Time)
	}
}

func TestParseTasksStream(t *testing.T) {
	input := `{"uuid": "a", "description": "one", "status": "pending"}
{"uuid": "b", "description": "two", "status": "completed"}
`
	tw, err := NewClient().ParseTasks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTasks failed: %v", err)
	}
	if len(tw) != 2 || tw[1].Status != COMPLETED {
		t.Errorf("unexpected tasks %+v", tw)
	}

	if tw, err := NewClient().ParseTasks(strings.NewReader("  \n")); err != nil || len(tw) != 0 {
		t.Errorf("empty input gave %v, %v", tw, err)
	}
	if _, err := NewClient().ParseTasks(strings.NewReader(`{"due": "yesterday"}`)); err == nil {
		t.Error("expected error for bad timestamp")
	}
}

func TestToTasks(t *testing.T) {
	tw, err := NewClient().ParseTasks(strings.NewReader(exportArray))
	if err != nil {
		t.Fatal(err)
	}
	tasks := ToTasks(tw)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	due := model.Wall(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC))
	if want := model.NewDeadline("Buy milk", due).DataLine(); tasks[0].DataLine() != want {
		t.Errorf("task 0 = %q, want %q", tasks[0].DataLine(), want)
	}

	event, ok := tasks[1].(*model.Event)
	if !ok || !event.IsDone() || event.Name() != "Workshop" {
		t.Fatalf("task 1 = %v, want done Workshop event", tasks[1])
	}
	if event.To.Sub(event.From) != 8*time.Hour {
		t.Errorf("event spans %v, want 8h", event.To.Sub(event.From))
	}

	if tasks[2].Kind() != model.KindToDo || tasks[2].Name() != "Someday" {
		t.Errorf("task 2 = %v", tasks[2])
	}
}

func TestCustomTimeMarshal(t *testing.T) {
	ct := CustomTime{Time: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)}
	b, err := ct.MarshalJSON()
	if err != nil || string(b) != `"20230101T120000Z"` {
		t.Errorf("MarshalJSON = %s, %v", b, err)
	}
	b, _ = CustomTime{}.MarshalJSON()
	if string(b) != `""` {
		t.Errorf("zero MarshalJSON = %s", b)
	}
}
