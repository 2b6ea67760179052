package parser

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/harrisonrobin/chore/pkg/command"
)

func at(day, month, year, hour, min int) time.Time {
	return time.Date(year, time.Month(month), day, hour, min, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  command.Command
	}{
		{"bye", command.Bye{}},
		{"list", command.List{}},
		{"  list  ", command.List{}},
		{"find book", command.Find{Keyword: "book"}},
		{"find  two words ", command.Find{Keyword: "two words"}},
		{"mark 1", command.Mark{Index: 1}},
		{"unmark 3", command.Unmark{Index: 3}},
		{"delete  12 ", command.Delete{Index: 12}},
		{"mark -2", command.Mark{Index: -2}},
		{"todo read book", command.AddToDo{Name: "read book"}},
		{"todo\tread book", command.AddToDo{Name: "read book"}},
		{
			"deadline submit report /by 08-07-2023 2359",
			command.AddDeadline{Name: "submit report", By: at(8, 7, 2023, 23, 59)},
		},
		{
			"deadline return a/b testing /by 01-01-2024 0900",
			command.AddDeadline{Name: "return a/b testing", By: at(1, 1, 2024, 9, 0)},
		},
		{
			// Last marker wins.
			"deadline x /by 01-01-2024 0900 /by 02-01-2024 1000",
			command.AddDeadline{Name: "x", By: at(2, 1, 2024, 10, 0)},
		},
		{
			"deadline file bypass request /bypass /by 05-05-2025 1200",
			command.AddDeadline{Name: "file bypass request /bypass", By: at(5, 5, 2025, 12, 0)},
		},
		{
			"event project meeting /from 10-08-2023 1400 /to 10-08-2023 1600",
			command.AddEvent{Name: "project meeting", From: at(10, 8, 2023, 14, 0), To: at(10, 8, 2023, 16, 0)},
		},
		{
			"event retro /to 10-08-2023 1600 /from 10-08-2023 1500",
			command.AddEvent{Name: "retro", From: at(10, 8, 2023, 15, 0), To: at(10, 8, 2023, 16, 0)},
		},
		{
			// From after To is accepted.
			"event backwards /from 11-08-2023 1000 /to 10-08-2023 1000",
			command.AddEvent{Name: "backwards", From: at(11, 8, 2023, 10, 0), To: at(10, 8, 2023, 10, 0)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrUnknownCommand},
		{"blah", ErrUnknownCommand},
		{"LIST", ErrUnknownCommand},
		{"find", ErrMissingKeyword},
		{"find    ", ErrMissingKeyword},
		{"mark", ErrMissingIndex},
		{"unmark ", ErrMissingIndex},
		{"delete", ErrMissingIndex},
		{"mark one", ErrNotANumber},
		{"delete 1.5", ErrNotANumber},
		{"todo", ErrEmptyDescription},
		{"todo   ", ErrEmptyDescription},
		{"deadline", ErrEmptyDescription},
		{"deadline /by 08-07-2023 2359", ErrMissingName},
		{"deadline submit report", ErrMissingBy},
		{"deadline submit report /by", ErrMissingBy},
		{"deadline x /by 8 July 2023", ErrWrongDateTime},
		{"deadline x /by 2023-07-08 2359", ErrWrongDateTime},
		{"event", ErrEmptyDescription},
		{"event /from 10-08-2023 1400 /to 10-08-2023 1600", ErrMissingName},
		{"event party /to 10-08-2023 1600", ErrMissingFrom},
		{"event party /from 10-08-2023 1400", ErrMissingTo},
		{"event party /from tomorrow /to 10-08-2023 1600", ErrWrongDateTime},
		{"event party /from 10-08-2023 1400 /to later", ErrWrongDateTime},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %#v, want error", tt.input, cmd)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("Parse(%q) error is %T, want *ParseError", tt.input, err)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("deadline testTask /by 8 July 2023")
	if got, want := err.Error(), "deadline: wrong datetime format, please use 'dd-MM-yyyy HHmm'"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	_, err = Parse("dance")
	if got := err.Error(); got != ErrUnknownCommand.Error() {
		t.Errorf("error = %q, want %q", got, ErrUnknownCommand.Error())
	}
}
