// Package nexuslog provides a high-throughput, low-latency structured logging
// engine for Go applications. A log call on the application side is a
// constant-time, non-blocking operation; a dedicated worker goroutine per sink
// handles formatting, buffered I/O, and daily file rotation.
//
// Example:
//
//	logger, err := nexuslog.New("app", "/var/log/myapp/app", nexuslog.LevelInfo)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer logger.Close()
//
//	logger.Info("application started")
//	logger.Infof("listening on %s", addr)
//
// Key properties:
//
//   - Non-blocking producers: records move through a bounded conduit
//     (65,536 actions by default); when it is full, the record is dropped
//     rather than stalling the caller
//   - Shared backends: handles created with the same sink identity converge
//     on a single worker goroutine and a single buffered writer
//   - Daily rotation: file sinks write {prefix}_YYYYMMDD.log and roll over
//     the first time a record's timestamp lands on a new local date
//   - Small messages render into a fixed inline buffer; plain-text calls
//     that fit avoid allocation, while formatted (Xf) calls allocate through
//     fmt. Larger messages fall back to the heap transparently
//   - Timestamps come from a pooled per-producer clock that reads the system
//     wall clock at most once per second
//   - Process-safe dated files: the worker holds an advisory flock on the
//     open log file, so a second writer fails fast instead of interleaving
//   - Optional NATS transport: NewNATS publishes each record line to a
//     subject through the same worker model
//
// Record format (fixed):
//
//	time=2006-01-02T15:04:05.000000+00:00 level=INFO name=app msg="text"
//
// The timezone offset is captured once at process start; DST transitions
// during the process lifetime are ignored. Message text is written verbatim,
// without escaping of embedded quotes or newlines.
//
// Shutdown is driven by handle lifetime: closing the last handle for a sink
// drains every queued record, flushes buffered bytes, and joins the worker.
// Engine failures (open, write, flush) are reported out-of-band through a
// configurable ErrorHandler because the engine cannot log through itself; an
// irrecoverable sink error terminates the worker.
package nexuslog
