package nexuslog

import "time"

const (
	// defaultChannelCapacity bounds the action conduit between producers and the
	// worker. Sends against a full conduit drop the record.
	defaultChannelCapacity = 65536

	// inlineMessageCap is the message capacity rendered without heap allocation.
	// Messages that render larger spill to an owned heap buffer.
	inlineMessageCap = 256

	// defaultBufferSize is the size of the buffered writer in front of each sink.
	defaultBufferSize = 1 << 20 // 1MB

	// defaultFlushInterval is the cadence at which buffered bytes are pushed to
	// the OS between explicit flushes.
	defaultFlushInterval = time.Second

	// pollInterval is the worker's receive timeout, used to honor the flush
	// cadence while the conduit is idle.
	pollInterval = 100 * time.Millisecond

	// dateFormat is the local-day suffix used in rotated file names.
	dateFormat = "20060102"
)
