package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level defines log severity. Lower values are more severe.
type Level int

const (
	// ErrorLevel is the most severe level.
	ErrorLevel Level = iota
	// WarnLevel is the default threshold of a new Logger.
	WarnLevel
	// InfoLevel enables informational logging.
	InfoLevel
	// DebugLevel enables debug logging.
	DebugLevel
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("unknown log level")

// AllLevels returns all supported levels, most severe first.
func AllLevels() []Level {
	return []Level{
		ErrorLevel,
		WarnLevel,
		InfoLevel,
		DebugLevel,
	}
}

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Enabled reports whether a message at level l passes the given threshold,
// that is, whether l is at least as severe as threshold.
func (l Level) Enabled(threshold Level) bool {
	return l <= threshold
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and accepts the common short forms ("warn", "err").
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "WARNING", "WARN":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	default:
		return WarnLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
