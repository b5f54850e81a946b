package kazlog

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// Callsite identifies the source location a record originated from.
// The zero value means "unspecified"; an unspecified site is rendered
// with the placeholder file "None" and line -1.
type Callsite struct {
	File string
	Line int
}

// Here captures the caller's file and line.
func Here() Callsite {
	return callerSite(2)
}

func (c Callsite) known() bool {
	return c != Callsite{}
}

// callerSite returns the call site skip frames above callerSite itself,
// or the zero Callsite if the stack cannot be inspected.
func callerSite(skip int) Callsite {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Callsite{}
	}
	return Callsite{File: file, Line: line}
}

// goroutineID returns the numeric id of the calling goroutine, parsed
// from the stack header ("goroutine N [running]:").
func goroutineID() string {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return "0"
	}
	return string(fields[1])
}

// onceSet tracks (file, line) pairs already warned about. It grows
// monotonically for the lifetime of the owning Context.
type onceSet struct {
	mu   sync.Mutex
	seen map[string]map[int]struct{}
}

// insert records (file, line) and reports whether it was newly added.
func (s *onceSet) insert(file string, line int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seen == nil {
		s.seen = make(map[string]map[int]struct{})
	}
	lines, ok := s.seen[file]
	if !ok {
		lines = make(map[int]struct{})
		s.seen[file] = lines
	}
	if _, dup := lines[line]; dup {
		return false
	}
	lines[line] = struct{}{}
	return true
}

// Logger emits leveled records to an ordered list of handlers. Loggers
// are created by a Context and live for its lifetime; handlers are
// shared references and may be attached to several loggers at once.
type Logger struct {
	name string

	mu        sync.RWMutex
	threshold Level
	handlers  []Handler

	warned *onceSet
}

// Name returns the registry name the logger was created under.
func (l *Logger) Name() string {
	return l.name
}

// SetThreshold replaces the logger's severity threshold. Records whose
// level ordinal exceeds the threshold are suppressed; LevelNone
// suppresses everything.
func (l *Logger) SetThreshold(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = level
}

// Threshold returns the current severity threshold.
func (l *Logger) Threshold() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.threshold
}

// AddHandler appends a handler to the dispatch list. There is no
// duplicate detection; attaching the same handler twice produces
// duplicate output.
func (l *Logger) AddHandler(h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
}

func (l *Logger) enabled(level Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level <= l.threshold
}

// Debug logs a debug message, capturing the caller's file and line.
func (l *Logger) Debug(text string) {
	if !l.enabled(LevelDebug) {
		return
	}
	l.write(LevelDebug, text, callerSite(2))
}

// DebugAt logs a debug message with an explicit call site.
func (l *Logger) DebugAt(text string, at Callsite) {
	if !l.enabled(LevelDebug) {
		return
	}
	l.write(LevelDebug, text, at)
}

// Info logs an informational message, capturing the caller's file and line.
func (l *Logger) Info(text string) {
	if !l.enabled(LevelInfo) {
		return
	}
	l.write(LevelInfo, text, callerSite(2))
}

// InfoAt logs an informational message with an explicit call site.
func (l *Logger) InfoAt(text string, at Callsite) {
	if !l.enabled(LevelInfo) {
		return
	}
	l.write(LevelInfo, text, at)
}

// Warn logs a warning message, capturing the caller's file and line.
func (l *Logger) Warn(text string) {
	if !l.enabled(LevelWarn) {
		return
	}
	l.write(LevelWarn, text, callerSite(2))
}

// WarnAt logs a warning message with an explicit call site.
func (l *Logger) WarnAt(text string, at Callsite) {
	if !l.enabled(LevelWarn) {
		return
	}
	l.write(LevelWarn, text, at)
}

// WarnOnce logs a warning at most once per call site, capturing the
// caller's file and line. This is slow; don't call it from
// performance-critical code.
func (l *Logger) WarnOnce(text string) {
	l.warnOnce(text, callerSite(2))
}

// WarnOnceAt logs a warning at most once per (file, line) pair. An
// unspecified site cannot be deduplicated and degrades to a plain warn.
func (l *Logger) WarnOnceAt(text string, at Callsite) {
	l.warnOnce(text, at)
}

func (l *Logger) warnOnce(text string, at Callsite) {
	if !at.known() {
		l.WarnAt(text, at)
		return
	}
	if !l.warned.insert(at.File, at.Line) {
		return
	}
	l.WarnAt(text, at)
}

// Error logs an error message, capturing the caller's file and line.
func (l *Logger) Error(text string) {
	if !l.enabled(LevelError) {
		return
	}
	l.write(LevelError, text, callerSite(2))
}

// ErrorAt logs an error message with an explicit call site.
func (l *Logger) ErrorAt(text string, at Callsite) {
	if !l.enabled(LevelError) {
		return
	}
	l.write(LevelError, text, at)
}

// write assembles the final line and pushes it to every handler in
// attachment order. Handler failures are reported to the fallback
// stream and never stop dispatch to later handlers; no error escapes a
// logging call.
func (l *Logger) write(level Level, text string, at Callsite) {
	file, line := at.File, at.Line
	if !at.known() {
		file, line = "None", -1
	}

	suffix, err := Format("{0}", line)
	if err != nil {
		fmt.Fprintf(outStderr, "kazlog: dropping record from %s: %v\n", l.name, err)
		return
	}
	message := fmt.Sprintf("%s: %s (%s:%s)", goroutineID(), text, file, suffix)
	ts := time.Now()

	l.mu.RLock()
	handlers := l.handlers
	l.mu.RUnlock()

	for _, h := range handlers {
		if werr := h.Write(l.name, ts, level.String(), message); werr != nil {
			fmt.Fprintf(outStderr, "kazlog: handler write failed for %s: %v\n", l.name, werr)
		}
	}
}
