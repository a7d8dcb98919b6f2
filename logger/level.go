package logger

import (
	"fmt"
	"strings"
)

// Level identifies the severity of a log message.
type Level string

const (
	// InfoLevel tags general informational messages.
	InfoLevel Level = "INFO"
	// WarnLevel tags potentially problematic situations.
	WarnLevel Level = "WARN"
	// ErrorLevel tags failures.
	ErrorLevel Level = "ERROR"
	// FatalLevel tags unrecoverable failures; see Config.FatalLogThrowsOnError
	// and Config.ShowFatalErrorScreen for the extra behavior it triggers.
	FatalLevel Level = "FATAL"
	// SuccessLevel tags operations that completed successfully.
	SuccessLevel Level = "SUCCESS"
	// DebugLevel tags diagnostic messages. They are only emitted while a
	// debugger is attached to the process.
	DebugLevel Level = "DEBUG"
	// NetworkLevel tags network traffic messages.
	NetworkLevel Level = "NETWORK"
)

// AllLevels returns all supported levels.
func AllLevels() []Level {
	return []Level{
		InfoLevel,
		WarnLevel,
		ErrorLevel,
		FatalLevel,
		SuccessLevel,
		DebugLevel,
		NetworkLevel,
	}
}

// String returns the symbolic name of the level.
func (l Level) String() string {
	return string(l)
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	switch l {
	case InfoLevel, WarnLevel, ErrorLevel, FatalLevel, SuccessLevel, DebugLevel, NetworkLevel:
		return true
	}
	return false
}

// ParseLevel parses a level name, ignoring case and surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
