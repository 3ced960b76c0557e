package nexuslog

import (
	"path/filepath"
	"sync/atomic"
)

// Logger is a producer-side handle. Emitting is constant-time and never
// blocks: below-level calls return immediately and accepted records are
// handed to the shared backend through a non-blocking bounded conduit. A full
// conduit drops the record.
//
// Handles created for the same sink identity share one backend and one worker
// goroutine; the backend shuts down when its last handle is closed.
type Logger struct {
	name    string
	level   int32 // atomic; holds a Level
	closed  int32 // atomic; 1 once Close has run
	backend *Backend
}

// New creates a file-backed logger handle. Records go to
// {prefix}_YYYYMMDD.log next to the prefix, rotating when the local date
// changes. Parent directories are created on first write.
//
// Parameters:
//   - name: the logger name stamped into each record
//   - prefix: the log file path prefix
//   - level: the minimum level this handle accepts
//   - opts: backend options, applied only when this call creates the backend
//
// Returns:
//   - *Logger: the handle
//   - error: any error encountered during validation
func New(name, prefix string, level Level, opts ...Option) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if prefix == "" {
		return nil, ErrEmptySinkPrefix
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	clean := filepath.Clean(prefix)
	b := acquireBackend("file://"+clean, cfg, func() sink { return newFileSink(clean) })
	return &Logger{name: name, level: int32(level), backend: b}, nil
}

// NewStdout creates a handle writing to standard output. All stdout handles
// in the process share one backend.
func NewStdout(name string, level Level, opts ...Option) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	b := acquireBackend(stdoutSinkKey, cfg, func() sink { return &stdoutSink{} })
	return &Logger{name: name, level: int32(level), backend: b}, nil
}

// NewNATS creates a handle that publishes records to a NATS subject. Handles
// with the same server URL and subject share one backend. The connection is
// established by the worker on the first record.
func NewNATS(name, url, subject string, level Level, opts ...Option) (*Logger, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if url == "" {
		return nil, ErrEmptyNATSURL
	}
	if subject == "" {
		return nil, ErrEmptyNATSSubject
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	key := url + "#" + subject
	b := acquireBackend(key, cfg, func() sink { return newNATSSink(url, subject) })
	return &Logger{name: name, level: int32(level), backend: b}, nil
}

// Log emits a message at the given level.
func (l *Logger) Log(level Level, text string) {
	if !l.enabled(level) {
		return
	}
	l.emit(level, newMessage(text))
}

// Logf emits a formatted message at the given level.
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	if !l.enabled(level) {
		return
	}
	l.emit(level, newMessagef(format, args...))
}

func (l *Logger) enabled(level Level) bool {
	return atomic.LoadInt32(&l.closed) == 0 && level >= Level(atomic.LoadInt32(&l.level))
}

func (l *Logger) emit(level Level, msg Message) {
	l.backend.send(action{
		kind: actionWrite,
		entry: entry{
			level: level,
			name:  l.name,
			ts:    stampNow(),
			msg:   msg,
		},
	})
}

// Flush asks the worker to push buffered bytes to the OS. Best-effort and
// asynchronous: a full conduit drops the request.
func (l *Logger) Flush() {
	if atomic.LoadInt32(&l.closed) != 0 {
		return
	}
	l.backend.send(action{kind: actionFlush})
}

// Close drops this handle's strong reference to the backend. Closing the last
// handle for a sink delivers the exit action, drains queued records, flushes,
// and joins the worker. Idempotent.
func (l *Logger) Close() {
	if !atomic.CompareAndSwapInt32(&l.closed, 0, 1) {
		return
	}
	l.backend.release()
}

// IsClosed returns true if this handle has been closed.
func (l *Logger) IsClosed() bool {
	return atomic.LoadInt32(&l.closed) != 0
}

// WithName returns a new handle with a different logger name sharing this
// handle's backend and minimum level. Must be called on an open handle; each
// derived handle needs its own Close.
func (l *Logger) WithName(name string) *Logger {
	l.backend.retain()
	return &Logger{
		name:    name,
		level:   atomic.LoadInt32(&l.level),
		backend: l.backend,
	}
}

// SetLevel sets the minimum log level for this handle.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreInt32(&l.level, int32(level))
}

// GetLevel returns the current minimum log level (thread-safe).
func (l *Logger) GetLevel() Level {
	return Level(atomic.LoadInt32(&l.level))
}

// Name returns the logger name stamped into records.
func (l *Logger) Name() string {
	return l.name
}

// Metrics returns a snapshot of the shared backend's counters.
func (l *Logger) Metrics() Metrics {
	return l.backend.Metrics()
}
