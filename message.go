package nexuslog

import "fmt"

// Message is the rendered log text. Text that fits the inline buffer is held
// there; larger text spills to an owned heap buffer. A Message
// is never mutated after construction; it moves through the pipeline by value.
type Message struct {
	inline [inlineMessageCap]byte
	n      int
	heap   []byte
}

// newMessage copies plain text into a Message. Text that fits the inline
// buffer is copied without heap allocation.
func newMessage(text string) Message {
	var m Message
	if len(text) <= len(m.inline) {
		m.n = copy(m.inline[:], text)
		return m
	}
	m.heap = []byte(text)
	return m
}

// newMessagef renders a format string into a Message. Rendering targets the
// inline buffer first; when the result does not fit, append has already moved
// the rendered bytes to a heap slice and the Message keeps that instead.
// The Message under construction escapes through fmt, so formatted
// construction allocates even when the result fits inline.
func newMessagef(format string, args ...interface{}) Message {
	var m Message
	b := fmt.Appendf(m.inline[:0], format, args...)
	if len(b) <= len(m.inline) {
		m.n = len(b)
		return m
	}
	m.heap = b
	return m
}

// Bytes returns the message content.
func (m *Message) Bytes() []byte {
	if m.heap != nil {
		return m.heap
	}
	return m.inline[:m.n]
}

// Len returns the message length in bytes.
func (m *Message) Len() int {
	if m.heap != nil {
		return len(m.heap)
	}
	return m.n
}

// spilled reports whether the message lives on the heap.
func (m *Message) spilled() bool {
	return m.heap != nil
}
