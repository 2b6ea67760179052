package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownKind is returned by ParseDataLine for records whose type code is
// not T, D or E. Loaders skip such records.
var ErrUnknownKind = errors.New("unknown task type")

// dataTimeLayouts are accepted when reading timestamps back; the first one is
// what DataLine writes.
var dataTimeLayouts = []string{DataTimeLayout, "2006-01-02T15:04:05"}

// ParseDataLine reverses Task.DataLine.
//
// Fields are split on every '|', so a name containing the delimiter does not
// survive a round trip: the extra fields shift the timestamps of D and E
// records and are dropped from T records.
func ParseDataLine(line string) (Task, error) {
	fields := strings.Split(line, "|")
	kind := Kind(fields[0])

	want := 0
	switch kind {
	case KindToDo:
		want = 3
	case KindDeadline:
		want = 4
	case KindEvent:
		want = 5
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, fields[0])
	}
	if len(fields) < want {
		return nil, fmt.Errorf("%s record has %d fields, want %d", kind, len(fields), want)
	}

	var done bool
	switch fields[1] {
	case "0":
	case "1":
		done = true
	default:
		return nil, fmt.Errorf("invalid done flag %q", fields[1])
	}
	name := fields[2]

	var task Task
	switch kind {
	case KindToDo:
		task = NewToDo(name)
	case KindDeadline:
		by, err := parseDataTime(fields[3])
		if err != nil {
			return nil, err
		}
		task = NewDeadline(name, by)
	case KindEvent:
		from, err := parseDataTime(fields[3])
		if err != nil {
			return nil, err
		}
		to, err := parseDataTime(fields[4])
		if err != nil {
			return nil, err
		}
		task = NewEvent(name, from, to)
	}
	if done {
		task.MarkDone()
	}
	return task, nil
}

func parseDataTime(s string) (time.Time, error) {
	for _, layout := range dataTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
