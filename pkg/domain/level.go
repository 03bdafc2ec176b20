package domain

import (
	"fmt"
	"strings"
)

// Level is the minimum severity written by the game's logging configuration.
type Level string

const (
	LevelError Level = "ERROR"
	LevelWarn  Level = "WARN"
	LevelInfo  Level = "INFO"
	LevelDebug Level = "DEBUG"
	LevelTrace Level = "TRACE"
)

// Levels lists every supported level, most severe first.
var Levels = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}

// ParseLevel converts a case-insensitive level name. An empty string yields LevelInfo.
func ParseLevel(s string) (Level, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return LevelInfo, nil
	}
	if s == "WARNING" {
		return LevelWarn, nil
	}
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	names := make([]string, len(Levels))
	for i, l := range Levels {
		names[i] = strings.ToLower(string(l))
	}
	return "", &ConfigurationError{
		Field:     "log_level",
		Reason:    fmt.Sprintf("unknown log level %q", s),
		Available: names,
		Err:       ErrInvalidConfig,
	}
}

func (l Level) String() string {
	return string(l)
}
