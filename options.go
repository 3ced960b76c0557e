package nexuslog

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// config carries backend construction settings. The first handle to acquire a
// sink identity fixes the shared backend's configuration; later handles for
// the same sink reuse the existing backend as-is.
type config struct {
	channelCapacity int
	flushInterval   time.Duration
	errorHandler    ErrorHandler
}

func defaultConfig() *config {
	return &config{
		channelCapacity: getDefaultChannelCapacity(),
		flushInterval:   defaultFlushInterval,
		errorHandler:    defaultErrorHandler(),
	}
}

// getDefaultChannelCapacity retrieves the conduit capacity from an
// environment variable or uses the default value
func getDefaultChannelCapacity() int {
	if value, exists := os.LookupEnv("NEXUSLOG_CHANNEL_SIZE"); exists {
		if size, err := strconv.Atoi(value); err == nil && size > 0 {
			return size
		}
	}
	return defaultChannelCapacity
}

// Option is a functional option for configuring a handle's backend.
type Option func(*config) error

// WithChannelSize sets the action conduit capacity.
func WithChannelSize(size int) Option {
	return func(c *config) error {
		if size <= 0 {
			return fmt.Errorf("channel size must be positive, got %d", size)
		}
		c.channelCapacity = size
		return nil
	}
}

// WithFlushInterval sets the cadence at which buffered bytes are pushed to
// the OS between explicit flushes.
func WithFlushInterval(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return fmt.Errorf("flush interval must be positive, got %v", d)
		}
		c.flushInterval = d
		return nil
	}
}

// WithErrorHandler sets the handler for out-of-band engine errors.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) error {
		if h == nil {
			return fmt.Errorf("error handler must not be nil")
		}
		c.errorHandler = h
		return nil
	}
}
