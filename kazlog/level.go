package kazlog

import (
	"strings"

	"github.com/pkg/errors"
)

// Levels define log severity. Lower values are more severe; LevelNone
// suppresses everything.
type Level int

const (
	// LevelNone suppresses all output.
	LevelNone Level = iota
	// LevelError enables error logging only.
	LevelError
	// LevelWarn enables warning logging.
	LevelWarn
	// LevelInfo enables informational logging.
	LevelInfo
	// LevelDebug enables debug logging (maximally verbose, the default).
	LevelDebug
)

// String returns the uppercase level word handlers receive.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name. Exactly the five level words are
// accepted, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return LevelNone, nil
	case "ERROR":
		return LevelError, nil
	case "WARN":
		return LevelWarn, nil
	case "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	}
	return LevelNone, errors.Errorf("unknown log level %q", s)
}
