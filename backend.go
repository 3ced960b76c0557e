package nexuslog

import (
	"sync/atomic"
	"time"
)

type actionKind uint8

const (
	actionWrite actionKind = iota
	actionFlush
	actionExit
)

// entry is one accepted log record.
type entry struct {
	level Level
	name  string
	ts    Timestamp
	msg   Message
}

// action is the unit moved through the conduit between producers and the
// worker.
type action struct {
	kind  actionKind
	entry entry
}

// Backend is the shared per-sink write path: the bounded action conduit plus
// the single worker goroutine that owns the sink. All handles created for the
// same sink identity route through one Backend.
type Backend struct {
	key string

	ch         chan action
	workerDone chan struct{}

	// refs is the strong reference count. Managed under the registry mutex.
	refs int

	flushInterval time.Duration
	errorHandler  ErrorHandler

	written      uint64
	dropped      uint64
	bytesWritten uint64
	rotations    uint64

	failure atomic.Value // error that terminated the worker
}

func newBackend(key string, s sink, cfg *config) *Backend {
	b := &Backend{
		key:           key,
		ch:            make(chan action, cfg.channelCapacity),
		workerDone:    make(chan struct{}),
		flushInterval: cfg.flushInterval,
		errorHandler:  cfg.errorHandler,
	}
	go b.worker(s)
	return b
}

// send enqueues an action without blocking. A write against a full conduit is
// dropped and counted.
func (b *Backend) send(a action) bool {
	select {
	case b.ch <- a:
		return true
	default:
		if a.kind == actionWrite {
			atomic.AddUint64(&b.dropped, 1)
		}
		return false
	}
}

// stop delivers the exit action and joins the worker. Queued records drain
// before the exit takes effect. Safe to call when the worker already
// terminated on a sink failure.
func (b *Backend) stop() {
	select {
	case b.ch <- action{kind: actionExit}:
	case <-b.workerDone:
	}
	<-b.workerDone
}

// Err reports the failure that terminated the worker, if any. A non-nil
// result means the backend is poisoned: sends still succeed at the conduit
// level but records are no longer written.
func (b *Backend) Err() error {
	if err, ok := b.failure.Load().(error); ok {
		return err
	}
	return nil
}

// fail records the worker's terminal error and reports it out-of-band. Only
// the first failure is kept.
func (b *Backend) fail(source string, err error) {
	if b.failure.Load() == nil {
		b.failure.Store(err)
	}
	if b.errorHandler != nil {
		b.errorHandler(LogError{
			Time:        time.Now(),
			Level:       ErrorLevelHigh,
			Source:      source,
			Message:     "log worker terminating",
			Err:         err,
			Destination: b.key,
		})
	}
}

// worker is the single goroutine draining the conduit. It formats records
// with the cached timestamp prefix, rotates the sink on local-date changes,
// and flushes on the configured cadence. It exits on the exit action or on
// the first irrecoverable sink error.
func (b *Backend) worker(s sink) {
	defer close(b.workerDone)

	cache := newFormatterCache()
	line := make([]byte, 0, 512)
	curDate := ""
	lastFlush := time.Now()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case a := <-b.ch:
			switch a.kind {
			case actionWrite:
				cache.update(a.entry.ts.Secs)
				if cache.date != curDate {
					if err := s.reopen(cache.date); err != nil {
						source := "rotate"
						if curDate == "" {
							source = "open"
						}
						b.fail(source, err)
						s.close()
						return
					}
					if curDate != "" {
						atomic.AddUint64(&b.rotations, 1)
					}
					curDate = cache.date
				}

				line = line[:0]
				line = append(line, cache.timePrefix...)
				line = appendMicros(line, a.entry.ts.Micros)
				line = append(line, cache.offsetSuffix...)
				line = append(line, " level="...)
				line = append(line, a.entry.level.Label()...)
				line = append(line, " name="...)
				line = append(line, a.entry.name...)
				line = append(line, ` msg="`...)
				line = append(line, a.entry.msg.Bytes()...)
				line = append(line, '"', '\n')

				n, err := s.writeLine(line)
				if err != nil {
					b.fail("write", err)
					s.close()
					return
				}
				atomic.AddUint64(&b.written, 1)
				atomic.AddUint64(&b.bytesWritten, uint64(n))

				if time.Since(lastFlush) >= b.flushInterval {
					if err := s.flush(); err != nil {
						b.fail("flush", err)
						s.close()
						return
					}
					lastFlush = time.Now()
				}

			case actionFlush:
				if err := s.flush(); err != nil {
					b.fail("flush", err)
					s.close()
					return
				}
				lastFlush = time.Now()

			case actionExit:
				if err := s.flush(); err != nil {
					b.fail("flush", err)
				}
				if err := s.close(); err != nil {
					b.fail("close", err)
				}
				return
			}

		case <-ticker.C:
			if time.Since(lastFlush) >= b.flushInterval {
				if err := s.flush(); err != nil {
					b.fail("flush", err)
					s.close()
					return
				}
				lastFlush = time.Now()
			}
		}
	}
}
