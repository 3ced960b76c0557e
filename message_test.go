package nexuslog

import (
	"bytes"
	"strings"
	"testing"
)

// TestMessageInline tests that short text stays in the inline buffer
func TestMessageInline(t *testing.T) {
	m := newMessage("hello")
	if m.spilled() {
		t.Errorf("Expected short message to stay inline")
	}
	if string(m.Bytes()) != "hello" {
		t.Errorf("Expected %q, got %q", "hello", m.Bytes())
	}
	if m.Len() != 5 {
		t.Errorf("Expected length 5, got %d", m.Len())
	}
}

// TestMessageHeapFallback tests that oversized text spills to the heap intact
func TestMessageHeapFallback(t *testing.T) {
	text := strings.Repeat("A", 5000)
	m := newMessage(text)
	if !m.spilled() {
		t.Errorf("Expected oversized message to spill to heap")
	}
	if string(m.Bytes()) != text {
		t.Errorf("Heap message content corrupted")
	}
}

// TestMessageBoundary tests the inline capacity boundary
func TestMessageBoundary(t *testing.T) {
	exact := strings.Repeat("x", inlineMessageCap)
	m := newMessage(exact)
	if m.spilled() {
		t.Errorf("Expected message of exactly %d bytes to stay inline", inlineMessageCap)
	}
	if string(m.Bytes()) != exact {
		t.Errorf("Inline message content corrupted at capacity boundary")
	}

	over := exact + "x"
	m = newMessage(over)
	if !m.spilled() {
		t.Errorf("Expected message of %d bytes to spill", inlineMessageCap+1)
	}
	if string(m.Bytes()) != over {
		t.Errorf("Heap message content corrupted just past the boundary")
	}
}

// TestMessageFormatting tests formatted construction in both representations
func TestMessageFormatting(t *testing.T) {
	m := newMessagef("user %s id %d", "alice", 42)
	if m.spilled() {
		t.Errorf("Expected short formatted message to stay inline")
	}
	if string(m.Bytes()) != "user alice id 42" {
		t.Errorf("Unexpected formatted content: %q", m.Bytes())
	}

	big := newMessagef("payload %s", strings.Repeat("B", 400))
	if !big.spilled() {
		t.Errorf("Expected large formatted message to spill")
	}
	want := "payload " + strings.Repeat("B", 400)
	if string(big.Bytes()) != want {
		t.Errorf("Large formatted content corrupted")
	}
}

// TestMessageIndistinguishable tests that inline and heap messages with the
// same logical content produce the same bytes
func TestMessageIndistinguishable(t *testing.T) {
	text := strings.Repeat("z", 100)
	a := newMessage(text)
	b := Message{heap: []byte(text)}
	if a.spilled() || !b.spilled() {
		t.Fatalf("Expected one inline and one heap message")
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Errorf("Same logical content produced different bytes")
	}
}
