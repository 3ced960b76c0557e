package nexuslog

import "sync/atomic"

// Metrics is a point-in-time snapshot of a backend's counters. All handles
// sharing a sink identity report the same backend.
type Metrics struct {
	// MessagesWritten counts records the worker wrote to the sink.
	MessagesWritten uint64
	// MessagesDropped counts records discarded because the conduit was full.
	MessagesDropped uint64
	// BytesWritten counts formatted bytes handed to the sink.
	BytesWritten uint64
	// Rotations counts date rollovers of the sink.
	Rotations uint64
	// QueueDepth is the number of actions waiting in the conduit.
	QueueDepth int
	// QueueCapacity is the conduit capacity.
	QueueCapacity int
}

// Metrics snapshots the backend counters.
func (b *Backend) Metrics() Metrics {
	return Metrics{
		MessagesWritten: atomic.LoadUint64(&b.written),
		MessagesDropped: atomic.LoadUint64(&b.dropped),
		BytesWritten:    atomic.LoadUint64(&b.bytesWritten),
		Rotations:       atomic.LoadUint64(&b.rotations),
		QueueDepth:      len(b.ch),
		QueueCapacity:   cap(b.ch),
	}
}
