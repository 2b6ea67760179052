package index

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/harrisonrobin/chore/pkg/model"
)

// KeyFor identifies a task across runs without a stored ID. It covers the
// kind, name and timestamps but not the done flag, so marking a task keeps
// its key while renaming or rescheduling it yields a new one.
func KeyFor(task model.Task) string {
	fields := strings.Split(task.DataLine(), "|")
	// Drop the done flag.
	fields = append(fields[:1], fields[2:]...)
	sum := blake3.Sum256([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(sum[:16])
}

// EventIndex maps task keys to Google Calendar event IDs.
type EventIndex struct {
	Mappings map[string]string `json:"mappings"`
	Path     string            `json:"-"`
	dirty    bool
}

// NewEventIndex opens the index stored at path, starting empty when the
// file does not exist.
func NewEventIndex(path string) (*EventIndex, error) {
	idx := &EventIndex{
		Mappings: make(map[string]string),
		Path:     path,
	}

	if _, err := os.Stat(path); err == nil {
		if err := idx.Load(); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func (idx *EventIndex) Load() error {
	f, err := os.Open(idx.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(&idx.Mappings)
}

// Save writes the index if it changed since the last Load or Save.
func (idx *EventIndex) Save() error {
	if !idx.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(idx.Path), 0700); err != nil {
		return err
	}

	f, err := os.Create(idx.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(idx.Mappings); err != nil {
		return err
	}
	idx.dirty = false
	return nil
}

func (idx *EventIndex) Get(key string) string {
	return idx.Mappings[key]
}

func (idx *EventIndex) Set(key, eventID string) {
	if idx.Mappings[key] != eventID {
		idx.Mappings[key] = eventID
		idx.dirty = true
	}
}

func (idx *EventIndex) Remove(key string) {
	if _, exists := idx.Mappings[key]; exists {
		delete(idx.Mappings, key)
		idx.dirty = true
	}
}

// Keys returns every indexed task key in sorted order.
func (idx *EventIndex) Keys() []string {
	keys := make([]string, 0, len(idx.Mappings))
	for k := range idx.Mappings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
