// Package file keeps a history of experiment runs: one JSON entry per run,
// numbered and timestamped, optionally pruned to the most recent runs.
package file

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/crimson-sun/topics/internal/model"
	"github.com/crimson-sun/topics/internal/output"
)

// maxEntrySize bounds a single history line when reading it back.
const maxEntrySize = 16 << 20

// Entry is one run recorded in the history.
type Entry struct {
	Run    int          `json:"run"`
	Time   time.Time    `json:"time"`
	Report model.Report `json:"report"`
}

// Option configures a file Output.
type Option func(*Output)

// WithKeep limits the history to the n most recent runs. 0 keeps every run.
func WithKeep(n int) Option {
	return func(o *Output) { o.keep = n }
}

// WithClock sets the source of run timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Output) { o.now = now }
}

// Output appends each report to the history file as a new run.
type Output struct {
	mu        sync.Mutex
	path      string
	verbosity output.Verbosity
	keep      int
	now       func() time.Time

	f       *os.File
	lastRun int
	entries int
}

// New opens the history at path, creating it if needed. Runs written
// through the Output continue the numbering found in the file.
func New(path string, verbosity output.Verbosity, opts ...Option) (*Output, error) {
	o := &Output{
		path:      path,
		verbosity: verbosity,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.keep < 0 {
		return nil, fmt.Errorf("file output: keep must be >= 0, got %d: %w", o.keep, model.ErrConfiguration)
	}

	history, err := Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	o.entries = len(history)
	if o.entries > 0 {
		o.lastRun = history[o.entries-1].Run
	}

	o.f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	return o, nil
}

// Write records the report as the next run.
func (o *Output) Write(_ context.Context, report model.Report) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	e := Entry{
		Run:    o.lastRun + 1,
		Time:   o.now().UTC(),
		Report: output.FormatReport(report, o.verbosity),
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	if _, err := o.f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("file output: write run %d: %w", e.Run, err)
	}
	o.lastRun = e.Run
	o.entries++
	return nil
}

// Close closes the file and prunes the history down to the retention limit.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.f.Close(); err != nil {
		return fmt.Errorf("file output: close: %w", err)
	}
	if o.keep == 0 || o.entries <= o.keep {
		return nil
	}
	if err := prune(o.path, o.keep); err != nil {
		return fmt.Errorf("file output: prune: %w", err)
	}
	o.entries = o.keep
	return nil
}

// Read returns every run recorded in the history file, oldest first.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("file output: %w", err)
	}
	defer f.Close()

	var history []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEntrySize)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("file output: %s line %d: %w: %w", path, line, model.ErrInvalidArgument, err)
		}
		history = append(history, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("file output: read %s: %w", path, err)
	}
	return history, nil
}

// prune rewrites the history with only its last keep runs. The new file is
// written beside the old one and renamed over it.
func prune(path string, keep int) error {
	history, err := Read(path)
	if err != nil {
		return err
	}
	if len(history) <= keep {
		return nil
	}
	history = history[len(history)-keep:]

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}

	w := bufio.NewWriter(tmp)
	enc := json.NewEncoder(w)
	for _, e := range history {
		if err := enc.Encode(e); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
