package nexuslog

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// natsFlushTimeout bounds the round-trip wait for a NATS flush.
const natsFlushTimeout = 2 * time.Second

// natsSink publishes record lines to a NATS subject. The connection is owned
// by the worker and established lazily on the first record; rotation does not
// apply.
type natsSink struct {
	url     string
	subject string
	conn    *nats.Conn
}

func newNATSSink(url, subject string) *natsSink {
	return &natsSink{url: url, subject: subject}
}

func (s *natsSink) reopen(string) error {
	if s.conn != nil {
		return nil
	}
	conn, err := nats.Connect(s.url,
		nats.Name("nexuslog"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return errors.Wrapf(err, "connecting to %s", s.url)
	}
	s.conn = conn
	return nil
}

// writeLine publishes the line without its trailing newline, so subscribers
// receive one record per message.
func (s *natsSink) writeLine(p []byte) (int, error) {
	line := p
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if err := s.conn.Publish(s.subject, line); err != nil {
		return 0, errors.Wrapf(err, "publishing to %s", s.subject)
	}
	return len(p), nil
}

func (s *natsSink) flush() error {
	if s.conn == nil {
		return nil
	}
	return errors.Wrapf(s.conn.FlushTimeout(natsFlushTimeout), "flushing %s", s.url)
}

func (s *natsSink) close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.FlushTimeout(natsFlushTimeout)
	s.conn.Close()
	s.conn = nil
	return errors.Wrapf(err, "draining connection to %s", s.url)
}
