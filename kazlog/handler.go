package kazlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Handler is a sink for fully formatted log records. Implementations
// must not filter by severity; filtering is the Logger's job. A Handler
// may be attached to multiple loggers and called from multiple
// goroutines, so Write must serialize access to its backing medium.
type Handler interface {
	Write(logger string, ts time.Time, level string, message string) error
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// ConsoleHandler writes one "[LEVEL] message" line per record to
// standard output.
type ConsoleHandler struct {
	mu sync.Mutex
}

// NewConsoleHandler returns a handler writing to standard output.
func NewConsoleHandler() *ConsoleHandler {
	return &ConsoleHandler{}
}

// Write writes the record as a single line. Thread-safe for concurrent use.
func (h *ConsoleHandler) Write(logger string, ts time.Time, level string, message string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := fmt.Fprintf(outStdout, "[%s] %s\n", level, message)
	return err
}

// FileHandler writes timestamped lines to a single file opened for the
// handler's lifetime. The file is created or truncated at construction;
// there is no rotation and no append mode.
type FileHandler struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// NewFileHandler opens path (creating or truncating it) and returns a
// handler writing to it. Failure to open is a configuration error and is
// returned to the caller; a FileHandler is never silently non-functional.
func NewFileHandler(path string) (*FileHandler, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", path)
	}
	return &FileHandler{path: path, file: f}, nil
}

// Write appends one "date time [LEVEL] message" line. Each call performs
// a synchronous, unbuffered write. Thread-safe for concurrent use.
func (h *FileHandler) Write(logger string, ts time.Time, level string, message string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return errors.Errorf("log file %s is closed", h.path)
	}
	_, err := fmt.Fprintf(h.file, "%s [%s] %s\n", ts.Format("2006/01/02 15:04:05"), level, message)
	if err != nil {
		return errors.Wrapf(err, "write log file %s", h.path)
	}
	return nil
}

// Close closes the backing file. Subsequent writes return an error.
// Safe to call more than once.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	return err
}
