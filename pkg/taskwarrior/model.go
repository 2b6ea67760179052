package taskwarrior

import (
	"fmt"
	"strings"
	"time"
)

const (
	PENDING   = "pending"
	COMPLETED = "completed"
	WAITING   = "waiting"
	DELETED   = "deleted"
	RECURRING = "recurring"
)

type CustomTime struct {
	time.Time
}

const taskwarriorTimeLayout = "20060102T150405Z"

func (ct *CustomTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "0" {
		ct.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(taskwarriorTimeLayout, s)
	if err != nil {
		return fmt.Errorf("failed to parse Taskwarrior time string '%s': %w", s, err)
	}
	ct.Time = t
	return nil
}

func (ct CustomTime) MarshalJSON() ([]byte, error) {
	if ct.Time.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + ct.Time.UTC().Format(taskwarriorTimeLayout) + `"`), nil
}

// Task holds the export fields chore reads.
type Task struct {
	UUID        string      `json:"uuid"`
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Due         *CustomTime `json:"due,omitempty"`
	Scheduled   *CustomTime `json:"scheduled,omitempty"`
	Project     string      `json:"project,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
}

func (ct *CustomTime) set() bool {
	return ct != nil && !ct.IsZero()
}
