package parser

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/harrisonrobin/chore/pkg/command"
)

// DateTimeLayout is the accepted input form for dates, dd-MM-yyyy HHmm.
const DateTimeLayout = "02-01-2006 1504"

var (
	ErrUnknownCommand   = errors.New("sorry, I don't know what that means")
	ErrMissingKeyword   = errors.New("please include the keyword you would like to search for")
	ErrMissingIndex     = errors.New("please include the task number")
	ErrNotANumber       = errors.New("please indicate a number for the task")
	ErrEmptyDescription = errors.New("the description cannot be empty")
	ErrMissingName      = errors.New("please include the name of the task")
	ErrMissingBy        = errors.New("please include when the deadline is by, e.g. /by 08-07-2023 2359")
	ErrMissingFrom      = errors.New("please include when the event is from, e.g. /from 08-07-2023 1400")
	ErrMissingTo        = errors.New("please include when the event is till, e.g. /to 08-07-2023 1600")
	ErrWrongDateTime    = errors.New("wrong datetime format, please use 'dd-MM-yyyy HHmm'")
)

// ParseError is returned for any line that does not form a valid command.
// Err is one of the Err* values above.
type ParseError struct {
	Keyword string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Keyword == "" || errors.Is(e.Err, ErrUnknownCommand) {
		return e.Err.Error()
	}
	return e.Keyword + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts one line of input into a command.
func Parse(line string) (command.Command, error) {
	keyword, rest := splitKeyword(line)
	fail := func(err error) (command.Command, error) {
		return nil, &ParseError{Keyword: keyword, Err: err}
	}

	switch keyword {
	case "bye":
		return command.Bye{}, nil
	case "list":
		return command.List{}, nil
	case "find":
		if rest == "" {
			return fail(ErrMissingKeyword)
		}
		return command.Find{Keyword: rest}, nil
	case "mark", "unmark", "delete":
		if rest == "" {
			return fail(ErrMissingIndex)
		}
		index, err := strconv.Atoi(rest)
		if err != nil {
			return fail(ErrNotANumber)
		}
		switch keyword {
		case "mark":
			return command.Mark{Index: index}, nil
		case "unmark":
			return command.Unmark{Index: index}, nil
		}
		return command.Delete{Index: index}, nil
	case "todo":
		if rest == "" {
			return fail(ErrEmptyDescription)
		}
		return command.AddToDo{Name: rest}, nil
	case "deadline":
		if rest == "" {
			return fail(ErrEmptyDescription)
		}
		name, markers := splitMarkers(rest, "by")
		if name == "" {
			return fail(ErrMissingName)
		}
		if markers["by"] == "" {
			return fail(ErrMissingBy)
		}
		by, err := parseDateTime(markers["by"])
		if err != nil {
			return fail(err)
		}
		return command.AddDeadline{Name: name, By: by}, nil
	case "event":
		if rest == "" {
			return fail(ErrEmptyDescription)
		}
		name, markers := splitMarkers(rest, "from", "to")
		if name == "" {
			return fail(ErrMissingName)
		}
		if markers["from"] == "" {
			return fail(ErrMissingFrom)
		}
		if markers["to"] == "" {
			return fail(ErrMissingTo)
		}
		from, err := parseDateTime(markers["from"])
		if err != nil {
			return fail(err)
		}
		to, err := parseDateTime(markers["to"])
		if err != nil {
			return fail(err)
		}
		return command.AddEvent{Name: name, From: from, To: to}, nil
	}
	return fail(ErrUnknownCommand)
}

// splitKeyword returns the first whitespace-delimited token of line and the
// trimmed remainder.
func splitKeyword(line string) (string, string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// splitMarkers splits s on '/' into a name and the values of the named
// markers. A segment after the first is a marker when it starts with the
// marker word followed by whitespace or the end of the segment; a repeated
// marker overwrites the earlier value. All other segments are joined back
// with '/' to form the name.
func splitMarkers(s string, names ...string) (string, map[string]string) {
	segments := strings.Split(s, "/")
	values := make(map[string]string, len(names))
	var nameParts []string

	for i, seg := range segments {
		matched := false
		if i > 0 {
			for _, marker := range names {
				if value, ok := markerValue(seg, marker); ok {
					values[marker] = value
					matched = true
					break
				}
			}
		}
		if !matched {
			nameParts = append(nameParts, seg)
		}
	}
	return strings.TrimSpace(strings.Join(nameParts, "/")), values
}

func markerValue(seg, marker string) (string, bool) {
	rest, ok := strings.CutPrefix(seg, marker)
	if !ok {
		return "", false
	}
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

func parseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, ErrWrongDateTime
	}
	return t, nil
}
