package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrisonrobin/chore/pkg/model"
)

// Error is returned when the data file cannot be read or written.
type Error struct {
	Op   string // "load" or "save"
	Path string
	Line int // 1-based line of a bad record, zero otherwise
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s: line %d: %v", e.Op, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// File stores tasks one data line per row in a plain text file.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads every task from the file. A missing file yields no tasks.
// Blank lines and records of unknown type are skipped.
func (f *File) Load() ([]model.Task, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &Error{Op: "load", Path: f.Path, Err: err}
	}
	defer file.Close()

	var tasks []model.Task
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := model.ParseDataLine(line)
		if errors.Is(err, model.ErrUnknownKind) {
			continue
		}
		if err != nil {
			return nil, &Error{Op: "load", Path: f.Path, Line: lineNo, Err: err}
		}
		tasks = append(tasks, task)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Op: "load", Path: f.Path, Err: err}
	}
	return tasks, nil
}

// Save overwrites the file with tasks. The write is not atomic.
func (f *File) Save(tasks []model.Task) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0700); err != nil {
		return &Error{Op: "save", Path: f.Path, Err: err}
	}

	file, err := os.Create(f.Path)
	if err != nil {
		return &Error{Op: "save", Path: f.Path, Err: err}
	}
	w := bufio.NewWriter(file)
	for _, task := range tasks {
		w.WriteString(task.DataLine())
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return &Error{Op: "save", Path: f.Path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &Error{Op: "save", Path: f.Path, Err: err}
	}
	return nil
}
