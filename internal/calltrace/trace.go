// Package calltrace captures forwarded driver calls as JSON lines.
package calltrace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNotFound is returned when a capture file does not exist.
var ErrNotFound = errors.New("capture not found")

// Entry is a single forwarded call.
// Each entry is serialized as one JSON line.
type Entry struct {
	// Seq numbers entries from zero in the order they were written
	Seq int `json:"seq"`

	// Proc is the driver symbol that was invoked
	Proc string `json:"proc"`

	// Args are the GLuint arguments in call order
	Args []uint32 `json:"args"`

	Timestamp time.Time `json:"timestamp"`
}

// Writer writes entries to a JSONL file.
// It uses buffered I/O and is safe for concurrent use.
type Writer struct {
	mu        sync.Mutex
	file      *os.File
	writer    *bufio.Writer
	path      string
	seq       int
	written   int
	autoFlush bool
	now       func() time.Time
}

// NewWriter creates a capture file at path, creating parent directories.
// If append is true, new entries are appended to an existing file and
// numbering continues after its last entry.
func NewWriter(path string, append bool) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create capture directory: %w", err)
		}
	}

	var file *os.File
	var err error
	seq := 0
	if append {
		if seq, err = nextSeq(path); err != nil {
			return nil, err
		}
		file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	} else {
		file, err = os.Create(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open capture file: %w", err)
	}

	return &Writer{
		file:   file,
		writer: bufio.NewWriterSize(file, 16*1024),
		path:   path,
		seq:    seq,
		now:    time.Now,
	}, nil
}

// nextSeq returns the sequence number following the last entry at path,
// or zero when the file does not exist or is empty.
func nextSeq(path string) (int, error) {
	r, err := NewReader(path)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	defer r.Close()

	next := 0
	for {
		entry, err := r.Read()
		if err == io.EOF {
			return next, nil
		}
		if err != nil {
			return 0, fmt.Errorf("failed to resume capture %s: %w", path, err)
		}
		next = entry.Seq + 1
	}
}

// SetAutoFlush makes every Write flush the buffer to the file, so entries
// survive a process that never calls Close.
func (w *Writer) SetAutoFlush(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.autoFlush = on
}

// Write appends a call to the capture. Seq and Timestamp are assigned here.
// The entry is buffered until Flush or Close unless auto flush is on.
func (w *Writer) Write(proc string, args []uint32) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	entry := Entry{
		Seq:       w.seq,
		Proc:      proc,
		Args:      args,
		Timestamp: w.now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal capture entry: %w", err)
	}
	if _, err := w.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write capture entry: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	w.seq++
	w.written++
	if w.autoFlush {
		if err := w.writer.Flush(); err != nil {
			return fmt.Errorf("failed to flush capture: %w", err)
		}
	}
	return nil
}

// Len returns the number of entries written by this writer.
func (w *Writer) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Flush writes buffered entries and syncs the file.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush capture: %w", err)
	}
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync capture: %w", err)
	}
	return nil
}

// Close flushes buffered data and closes the capture file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush on close: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close capture: %w", err)
	}
	return nil
}

// Path returns the filesystem path of the capture.
func (w *Writer) Path() string {
	return w.path
}

// Reader reads entries from a JSONL capture.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
}

// NewReader opens the capture at path.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open capture: %w", err)
	}

	return &Reader{
		file:    file,
		scanner: bufio.NewScanner(file),
	}, nil
}

// Read returns the next entry, or io.EOF when the capture is exhausted.
func (r *Reader) Read() (*Entry, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to scan capture line: %w", err)
		}
		return nil, io.EOF
	}

	var entry Entry
	if err := json.Unmarshal(r.scanner.Bytes(), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal capture entry: %w", err)
	}
	return &entry, nil
}

// ReadAll reads every remaining entry.
func (r *Reader) ReadAll() ([]Entry, error) {
	var entries []Entry
	for {
		entry, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close capture: %w", err)
	}
	return nil
}
