package nexuslog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrorLevel represents the severity of an engine error.
type ErrorLevel int

const (
	// ErrorLevelLow for minor errors
	ErrorLevelLow ErrorLevel = iota
	// ErrorLevelMedium for important errors
	ErrorLevelMedium
	// ErrorLevelHigh for critical errors
	ErrorLevelHigh
)

// Common errors returned by NexusLog operations
var (
	// ErrEmptyName is returned when a handle is created without a logger name
	ErrEmptyName = errors.New("logger name is empty")

	// ErrEmptySinkPrefix is returned when a file handle is created without a path prefix
	ErrEmptySinkPrefix = errors.New("sink path prefix is empty")

	// ErrEmptyNATSURL is returned when a NATS handle is created without a server URL
	ErrEmptyNATSURL = errors.New("NATS server URL is empty")

	// ErrEmptyNATSSubject is returned when a NATS handle is created without a subject
	ErrEmptyNATSSubject = errors.New("NATS subject is empty")
)

// LogError describes a failure inside the engine. The engine cannot log
// through itself, so failures are delivered out-of-band to the configured
// ErrorHandler instead.
type LogError struct {
	Time        time.Time
	Level       ErrorLevel
	Source      string // "open", "write", "rotate", "flush", "close"
	Message     string
	Err         error
	Destination string // sink identity where the error occurred
}

// Error returns the string representation of the LogError.
func (e LogError) Error() string {
	if e.Destination != "" {
		return fmt.Sprintf("[%s] %s error in %s: %s - %v",
			e.Time.Format("2006-01-02 15:04:05"),
			e.Source, e.Destination, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s error: %s - %v",
		e.Time.Format("2006-01-02 15:04:05"),
		e.Source, e.Message, e.Err)
}

// ErrorHandler is a function that handles engine errors.
type ErrorHandler func(LogError)

// StderrErrorHandler writes engine errors to standard error.
func StderrErrorHandler(err LogError) {
	fmt.Fprintf(os.Stderr, "nexuslog: %s\n", err.Error())
}

// SilentErrorHandler discards engine errors.
func SilentErrorHandler(LogError) {}

// isTestMode detects if we're running under go test
func isTestMode() bool {
	if exe, err := os.Executable(); err == nil {
		if filepath.Base(exe) == "go" || strings.Contains(exe, ".test") {
			return true
		}
	}
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			return true
		}
	}
	return false
}

// defaultErrorHandler is stderr in production and silent under go test to
// avoid noisy output.
func defaultErrorHandler() ErrorHandler {
	if isTestMode() {
		return SilentErrorHandler
	}
	return StderrErrorHandler
}
