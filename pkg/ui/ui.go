package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/harrisonrobin/chore/pkg/model"
	"github.com/harrisonrobin/chore/pkg/overdue"
)

// Theme holds the colours used for terminal output, as ANSI 256-color codes.
type Theme struct {
	Rule   lipgloss.Color
	Error  lipgloss.Color
	Accent lipgloss.Color
}

var DefaultTheme = Theme{
	Rule:   lipgloss.Color("240"),
	Error:  lipgloss.Color("203"),
	Accent: lipgloss.Color("75"),
}

const ruleWidth = 60

// Renderer writes framed messages to a terminal. It implements
// command.Presenter.
type Renderer struct {
	out    io.Writer
	rule   lipgloss.Style
	body   lipgloss.Style
	err    lipgloss.Style
	accent lipgloss.Style
}

// New returns a Renderer writing to out. Colour is only emitted when out is
// a terminal.
func New(out io.Writer, theme Theme) *Renderer {
	lr := lipgloss.NewRenderer(out)
	return &Renderer{
		out:    out,
		rule:   lr.NewStyle().Foreground(theme.Rule),
		body:   lr.NewStyle().PaddingLeft(4),
		err:    lr.NewStyle().Foreground(theme.Error),
		accent: lr.NewStyle().Foreground(theme.Accent).Bold(true),
	}
}

// Print writes text between two horizontal rules.
func (r *Renderer) Print(text string) {
	rule := r.rule.Render(strings.Repeat("─", ruleWidth))
	fmt.Fprintf(r.out, "%s\n%s\n%s\n", rule, r.body.Render(text), rule)
}

func (r *Renderer) Greeting() string {
	return "Hello! I'm " + r.accent.Render("chore") + ".\nWhat can I do for you?"
}

func (r *Renderer) Error(err error) string {
	return r.err.Render("OOPS! " + err.Error())
}

// Reminder lists overdue deadlines. It returns "" when there are none.
func (r *Renderer) Reminder(entries []overdue.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Heads up, %s overdue:", plural(len(entries), "deadline is", "deadlines are"))
	for _, e := range entries {
		fmt.Fprintf(&b, "\n%d.%s, %s late", e.Position, e.Task, e.Late.Round(time.Minute))
	}
	return b.String()
}

func (r *Renderer) Added(task model.Task, count int) string {
	return fmt.Sprintf("Got it. I've added this task:\n  %s\n%s", task, r.countLine(count))
}

func (r *Renderer) Marked(task model.Task) string {
	return fmt.Sprintf("Nice! I've marked this task as done:\n  %s", task)
}

func (r *Renderer) Unmarked(task model.Task) string {
	return fmt.Sprintf("OK, I've marked this task as not done yet:\n  %s", task)
}

func (r *Renderer) Deleted(task model.Task, count int) string {
	return fmt.Sprintf("Noted. I've removed this task:\n  %s\n%s", task, r.countLine(count))
}

func (r *Renderer) Listed(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "Your list is empty."
	}
	return "Here are the tasks in your list:" + enumerate(tasks)
}

func (r *Renderer) Found(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "No tasks match that keyword."
	}
	return "Here are the matching tasks in your list:" + enumerate(tasks)
}

func (r *Renderer) Farewell() string {
	return "Bye. Hope to see you again soon!"
}

func (r *Renderer) countLine(count int) string {
	return fmt.Sprintf("Now you have %s in the list.", plural(count, "task", "tasks"))
}

func enumerate(tasks []model.Task) string {
	var b strings.Builder
	for i, task := range tasks {
		fmt.Fprintf(&b, "\n%d.%s", i+1, task)
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
