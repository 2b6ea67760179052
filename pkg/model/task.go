package model

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the single-letter type code a task carries in its data line.
type Kind string

const (
	KindToDo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

const (
	// DataTimeLayout is how timestamps are written to the data file.
	DataTimeLayout = "2006-01-02T15:04"
	// DisplayTimeLayout is how timestamps are shown to the user.
	DisplayTimeLayout = "Jan 02 2006 15:04"
)

// Task is the contract shared by every task variant.
type Task interface {
	Kind() Kind
	Name() string
	IsDone() bool
	MarkDone()
	MarkUndone()
	// String returns the display form, e.g. "[T][X] read book".
	String() string
	// DataLine returns the pipe-delimited record written to the data file.
	DataLine() string
}

type base struct {
	name string
	done bool
}

func (b *base) Name() string { return b.name }
func (b *base) IsDone() bool { return b.done }
func (b *base) MarkDone() { b.done = true }
func (b *base) MarkUndone() { b.done = false }

func (b *base) doneFlag() string {
	if b.done {
		return "1"
	}
	return "0"
}

func (b *base) prefix(k Kind) string {
	mark := " "
	if b.done {
		mark = "X"
	}
	return fmt.Sprintf("[%s][%s] %s", k, mark, b.name)
}

// ToDo is a plain task without any temporal fields.
type ToDo struct {
	base
}

func NewToDo(name string) *ToDo {
	return &ToDo{base{name: name}}
}

func (t *ToDo) Kind() Kind { return KindToDo }
func (t *ToDo) String() string { return t.prefix(KindToDo) }
func (t *ToDo) DataLine() string { return joinFields(KindToDo, t.doneFlag(), t.name) }

// Deadline is a task that is due by a single instant.
type Deadline struct {
	base
	By time.Time
}

func NewDeadline(name string, by time.Time) *Deadline {
	return &Deadline{base: base{name: name}, By: by}
}

func (d *Deadline) Kind() Kind { return KindDeadline }

func (d *Deadline) String() string {
	return fmt.Sprintf("%s (by: %s)", d.prefix(KindDeadline), d.By.Format(DisplayTimeLayout))
}

func (d *Deadline) DataLine() string {
	return joinFields(KindDeadline, d.doneFlag(), d.name, d.By.Format(DataTimeLayout))
}

// Event is a task spanning a time range. From is not required to precede To.
type Event struct {
	base
	From time.Time
	To   time.Time
}

func NewEvent(name string, from, to time.Time) *Event {
	return &Event{base: base{name: name}, From: from, To: to}
}

func (e *Event) Kind() Kind { return KindEvent }

func (e *Event) String() string {
	return fmt.Sprintf("%s (from: %s to: %s)", e.prefix(KindEvent),
		e.From.Format(DisplayTimeLayout), e.To.Format(DisplayTimeLayout))
}

func (e *Event) DataLine() string {
	return joinFields(KindEvent, e.doneFlag(), e.name,
		e.From.Format(DataTimeLayout), e.To.Format(DataTimeLayout))
}

func joinFields(k Kind, fields ...string) string {
	return string(k) + "|" + strings.Join(fields, "|")
}

// Wall converts an instant to a zone-less wall-clock timestamp in the local
// zone, truncated to the minute. Timestamps held by tasks are always in this form.
func Wall(t time.Time) time.Time {
	lt := t.Local()
	return time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), lt.Minute(), 0, 0, time.UTC)
}
