package kazlog

import (
	"fmt"
	"os"
	"sync"
)

// rootName is the registry name of the logger behind the package-level
// logging functions.
const rootName = "root"

// Context owns a registry of named loggers and the warn-once table they
// share. Loggers are created lazily on first lookup and live for the
// Context's lifetime; they are never removed. The zero value is not
// usable, call NewContext.
type Context struct {
	mu      sync.Mutex
	loggers map[string]*Logger
	warned  onceSet
}

// NewContext returns an empty logging context.
func NewContext() *Context {
	return &Context{loggers: make(map[string]*Logger)}
}

// Logger returns the logger registered under name, creating it with the
// default threshold (LevelDebug) and no handlers if it does not exist.
// Repeated lookups of the same name return the same instance.
func (c *Context) Logger(name string) *Logger {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.loggers[name]; ok {
		return l
	}
	l := &Logger{name: name, threshold: LevelDebug, warned: &c.warned}
	c.loggers[name] = l
	return l
}

// The process-wide default context backing GetLogger and the free
// logging functions.
var (
	defaultContext = NewContext()
	rootOnce       sync.Once
)

// GetLogger returns the named logger from the default context.
func GetLogger(name string) *Logger {
	return defaultContext.Logger(name)
}

// Root returns the default context's root logger. On first use the
// root threshold honors the KAZLOG_LEVEL environment variable when set.
func Root() *Logger {
	rootOnce.Do(func() {
		applyEnvThreshold(defaultContext.Logger(rootName))
	})
	return defaultContext.Logger(rootName)
}

// applyEnvThreshold sets the logger threshold from KAZLOG_LEVEL.
// An unknown level name is reported and ignored.
func applyEnvThreshold(l *Logger) {
	env := os.Getenv("KAZLOG_LEVEL")
	if env == "" {
		return
	}
	level, err := ParseLevel(env)
	if err != nil {
		fmt.Fprintf(outStderr, "kazlog: ignoring KAZLOG_LEVEL: %v\n", err)
		return
	}
	l.SetThreshold(level)
}

// Debug logs a debug message on the root logger, capturing the caller's
// file and line.
func Debug(text string) {
	l := Root()
	if !l.enabled(LevelDebug) {
		return
	}
	l.write(LevelDebug, text, callerSite(2))
}

// Info logs an informational message on the root logger, capturing the
// caller's file and line.
func Info(text string) {
	l := Root()
	if !l.enabled(LevelInfo) {
		return
	}
	l.write(LevelInfo, text, callerSite(2))
}

// Warn logs a warning message on the root logger, capturing the
// caller's file and line.
func Warn(text string) {
	l := Root()
	if !l.enabled(LevelWarn) {
		return
	}
	l.write(LevelWarn, text, callerSite(2))
}

// WarnOnce logs a warning on the root logger at most once per call
// site, capturing the caller's file and line.
func WarnOnce(text string) {
	Root().warnOnce(text, callerSite(2))
}

// Error logs an error message on the root logger, capturing the
// caller's file and line.
func Error(text string) {
	l := Root()
	if !l.enabled(LevelError) {
		return
	}
	l.write(LevelError, text, callerSite(2))
}
