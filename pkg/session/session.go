package session

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/harrisonrobin/chore/pkg/command"
	"github.com/harrisonrobin/chore/pkg/overdue"
	"github.com/harrisonrobin/chore/pkg/parser"
	"github.com/harrisonrobin/chore/pkg/tasklist"
	"github.com/harrisonrobin/chore/pkg/ui"
)

// Session reads commands line by line and applies them to a task list it
// owns exclusively.
type Session struct {
	List  *tasklist.List
	Saver command.Saver
	UI    *ui.Renderer
	// RemindOverdue shows open deadlines that have passed before the first prompt.
	RemindOverdue bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// Run processes input until "bye" or end of input. Malformed lines, bad task
// numbers and failed saves are reported and do not stop the session; only a
// read error on in is returned.
func (s *Session) Run(in io.Reader) error {
	s.UI.Print(s.UI.Greeting())
	if s.RemindOverdue {
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		if text := s.UI.Reminder(overdue.Sweep(s.List, now())); text != "" {
			s.UI.Print(text)
		}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if exit := s.handle(line); exit {
			return nil
		}
	}
	return scanner.Err()
}

func (s *Session) handle(line string) bool {
	cmd, err := parser.Parse(line)
	if err != nil {
		s.UI.Print(s.UI.Error(err))
		return false
	}

	res, err := command.Execute(cmd, s.List, s.Saver, s.UI)
	var saveErr *command.SaveError
	switch {
	case errors.As(err, &saveErr):
		s.UI.Print(res.Text + "\n" + s.UI.Error(err))
	case err != nil:
		s.UI.Print(s.UI.Error(err))
	default:
		s.UI.Print(res.Text)
	}
	return res.Exit
}
