package nexuslog

import "strings"

// Level is the severity of a log record. Levels are ordered; a handle only
// accepts records at or above its minimum level.
type Level int32

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// Label returns the short uppercase textual form of the level.
func (l Level) Label() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "LOG"
	}
}

// ParseLevel looks up a level by name, case-insensitively. Unknown or empty
// names return the fallback.
func ParseLevel(level string, fallback Level) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return fallback
	}
}

// Trace logs a message at trace level.
func (l *Logger) Trace(text string) {
	l.Log(LevelTrace, text)
}

// Tracef logs a formatted message at trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.Logf(LevelTrace, format, args...)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(text string) {
	l.Log(LevelDebug, text)
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Logf(LevelDebug, format, args...)
}

// Info logs a message at info level.
func (l *Logger) Info(text string) {
	l.Log(LevelInfo, text)
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Logf(LevelInfo, format, args...)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(text string) {
	l.Log(LevelWarn, text)
}

// Warnf logs a formatted message at warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Logf(LevelWarn, format, args...)
}

// Error logs a message at error level.
func (l *Logger) Error(text string) {
	l.Log(LevelError, text)
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Logf(LevelError, format, args...)
}
