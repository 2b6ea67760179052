package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harrisonrobin/chore/pkg/model"
)

func TestLoadMissingFile(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nope.txt"))
	tasks, err := f.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "tasks.txt")
	f := NewFile(path)

	deadline := model.NewDeadline("submit report", time.Date(2023, 7, 8, 23, 59, 0, 0, time.UTC))
	deadline.MarkDone()
	want := []model.Task{
		model.NewToDo("read book"),
		deadline,
		model.NewEvent("conference", time.Date(2023, 9, 1, 9, 0, 0, 0, time.UTC), time.Date(2023, 9, 3, 18, 0, 0, 0, time.UTC)),
	}
	if err := f.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	wantRaw := "T|0|read book\n" +
		"D|1|submit report|2023-07-08T23:59\n" +
		"E|0|conference|2023-09-01T09:00|2023-09-03T18:00\n"
	if string(raw) != wantRaw {
		t.Errorf("file contents:\n%s\nwant:\n%s", raw, wantRaw)
	}

	got, err := f.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d tasks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].DataLine() != want[i].DataLine() {
			t.Errorf("task %d = %q, want %q", i, got[i].DataLine(), want[i].DataLine())
		}
	}

	// Save overwrites rather than appends.
	if err := f.Save(want[:1]); err != nil {
		t.Fatal(err)
	}
	got, err = f.Load()
	if err != nil || len(got) != 1 {
		t.Errorf("after overwrite loaded %d tasks, err %v", len(got), err)
	}
}

func TestLoadSkipsUnknownTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	data := "T|0|keep\nZ|1|future type\n\nD|0|due|2024-01-01T10:00\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	tasks, err := NewFile(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Name() != "keep" || tasks[1].Name() != "due" {
		t.Errorf("unexpected tasks: %v", tasks)
	}
}

func TestLoadMalformedRecordFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := os.WriteFile(path, []byte("T|0|ok\nD|0|broken|someday\n"), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := NewFile(path).Load()
	var storeErr *Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if storeErr.Op != "load" || storeErr.Line != 2 {
		t.Errorf("unexpected error details: %+v", storeErr)
	}
}

func TestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file makes Create fail.
	path := filepath.Join(dir, "tasks.txt")
	if err := os.Mkdir(path, 0700); err != nil {
		t.Fatal(err)
	}
	err := NewFile(path).Save([]model.Task{model.NewToDo("x")})
	var storeErr *Error
	if !errors.As(err, &storeErr) || storeErr.Op != "save" {
		t.Errorf("expected save error, got %v", err)
	}
}
