package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harrisonrobin/chore/pkg/model"
	"github.com/harrisonrobin/chore/pkg/overdue"
)

func TestMessages(t *testing.T) {
	r := New(&bytes.Buffer{}, DefaultTheme)
	task := model.NewToDo("read book")

	tests := []struct {
		got  string
		want []string
	}{
		{r.Added(task, 1), []string{"[T][ ] read book", "Now you have 1 task in the list."}},
		{r.Deleted(task, 3), []string{"removed", "Now you have 3 tasks in the list."}},
		{r.Marked(task), []string{"marked this task as done", "read book"}},
		{r.Unmarked(task), []string{"not done yet", "read book"}},
		{r.Listed(nil), []string{"Your list is empty."}},
		{r.Listed([]model.Task{task, model.NewToDo("b")}), []string{"1.[T][ ] read book", "2.[T][ ] b"}},
		{r.Found(nil), []string{"No tasks match"}},
		{r.Found([]model.Task{task}), []string{"matching tasks", "1.[T][ ] read book"}},
		{r.Farewell(), []string{"Bye"}},
		{r.Error(errors.New("boom")), []string{"boom"}},
		{r.Greeting(), []string{"chore"}},
	}
	for _, tt := range tests {
		for _, want := range tt.want {
			if !strings.Contains(tt.got, want) {
				t.Errorf("%q does not contain %q", tt.got, want)
			}
		}
	}
}

func TestReminder(t *testing.T) {
	r := New(&bytes.Buffer{}, DefaultTheme)
	if got := r.Reminder(nil); got != "" {
		t.Errorf("Reminder(nil) = %q, want empty", got)
	}
	d := model.NewDeadline("pay rent", time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC))
	got := r.Reminder([]overdue.Entry{{Position: 4, Task: d, Late: 90 * time.Minute}})
	for _, want := range []string{"1 deadline is overdue", "4.[D][ ] pay rent", "1h30m0s late"} {
		if !strings.Contains(got, want) {
			t.Errorf("%q does not contain %q", got, want)
		}
	}
}

func TestPrintFramesText(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, DefaultTheme)
	r.Print("hello")
	out := buf.String()
	if strings.Count(out, strings.Repeat("─", ruleWidth)) != 2 {
		t.Errorf("expected two rules in %q", out)
	}
	if !strings.Contains(out, "    hello") {
		t.Errorf("expected indented body in %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected escape codes writing to a buffer: %q", out)
	}
}
