package nexuslog

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// stdoutSinkKey is the registry identity shared by all stdout handles.
const stdoutSinkKey = "stdout://"

// sink is the worker-side write target. Exactly one worker goroutine owns a
// sink; none of these methods are safe for concurrent use.
type sink interface {
	// reopen points the sink at the target for the given local date, closing
	// the previous target first. Date-insensitive sinks open once and treat
	// later calls as a no-op.
	reopen(date string) error
	writeLine(p []byte) (int, error)
	flush() error
	close() error
}

// fileSink writes date-suffixed log files under a fixed path prefix. The
// current file is held under an advisory flock so a second writer targeting
// the same dated file fails fast instead of interleaving bytes.
type fileSink struct {
	prefix string
	file   *os.File
	w      *bufio.Writer
	lock   *flock.Flock
	size   int64
}

func newFileSink(prefix string) *fileSink {
	return &fileSink{prefix: prefix}
}

// datedPath returns {prefix}_YYYYMMDD.log for a local date.
func (s *fileSink) datedPath(date string) string {
	return s.prefix + "_" + date + ".log"
}

func (s *fileSink) reopen(date string) error {
	if s.file != nil {
		if err := s.closeCurrent(); err != nil {
			return err
		}
	}

	path := s.datedPath(date)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "creating log directory for %s", path)
		}
	}

	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return errors.Wrapf(err, "locking %s", path)
	}
	if !locked {
		return errors.Errorf("log file %s is locked by another writer", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		lock.Unlock()
		return errors.Wrapf(err, "opening %s", path)
	}

	s.file = file
	s.lock = lock
	s.w = bufio.NewWriterSize(file, defaultBufferSize)
	s.size = 0
	if info, err := file.Stat(); err == nil {
		s.size = info.Size()
	}
	return nil
}

// closeCurrent flushes and releases the open dated file and its lock.
func (s *fileSink) closeCurrent() error {
	if err := s.w.Flush(); err != nil {
		return errors.Wrap(err, "flushing log file")
	}
	if err := s.file.Close(); err != nil {
		return errors.Wrap(err, "closing log file")
	}
	if s.lock != nil {
		s.lock.Unlock()
		s.lock = nil
	}
	s.file = nil
	s.w = nil
	return nil
}

func (s *fileSink) writeLine(p []byte) (int, error) {
	n, err := s.w.Write(p)
	s.size += int64(n)
	if err != nil {
		return n, errors.Wrap(err, "writing log file")
	}
	return n, nil
}

func (s *fileSink) flush() error {
	if s.w == nil {
		return nil
	}
	return errors.Wrap(s.w.Flush(), "flushing log file")
}

func (s *fileSink) close() error {
	if s.file == nil {
		return nil
	}
	return s.closeCurrent()
}

// stdoutSink buffers standard output. Rotation does not apply; the stream
// itself is never closed.
type stdoutSink struct {
	w *bufio.Writer
}

func (s *stdoutSink) reopen(string) error {
	if s.w == nil {
		s.w = bufio.NewWriterSize(os.Stdout, defaultBufferSize)
	}
	return nil
}

func (s *stdoutSink) writeLine(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *stdoutSink) flush() error {
	if s.w == nil {
		return nil
	}
	return errors.Wrap(s.w.Flush(), "flushing stdout")
}

func (s *stdoutSink) close() error {
	return s.flush()
}
