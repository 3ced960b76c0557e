package nexuslog

import "time"

// formatterCache caches the formatted whole-second part of the record
// timestamp, so the worker rebuilds it at most once per wall-clock second.
type formatterCache struct {
	lastSecs uint64
	valid    bool

	// timePrefix is `time=YYYY-MM-DDTHH:MM:SS.` for lastSecs in the process zone.
	timePrefix []byte
	// offsetSuffix is the fixed ±HH:MM zone suffix.
	offsetSuffix string
	// date is the local day of lastSecs in file-suffix form, YYYYMMDD.
	date string
}

func newFormatterCache() *formatterCache {
	return &formatterCache{
		timePrefix:   make([]byte, 0, 32),
		offsetSuffix: offsetString(zoneOffset),
	}
}

// update rebuilds the cached prefix and local date when secs moves to a new
// second. Same-second calls are a no-op.
func (c *formatterCache) update(secs uint64) {
	if c.valid && secs == c.lastSecs {
		return
	}
	t := time.Unix(int64(secs), 0).In(logZone)
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	b := c.timePrefix[:0]
	b = append(b, "time="...)
	b = appendPadded(b, year, 4)
	b = append(b, '-')
	b = appendPadded(b, int(month), 2)
	b = append(b, '-')
	b = appendPadded(b, day, 2)
	b = append(b, 'T')
	b = appendPadded(b, hour, 2)
	b = append(b, ':')
	b = appendPadded(b, min, 2)
	b = append(b, ':')
	b = appendPadded(b, sec, 2)
	b = append(b, '.')
	c.timePrefix = b

	d := make([]byte, 0, 8)
	d = appendPadded(d, year, 4)
	d = appendPadded(d, int(month), 2)
	d = appendPadded(d, day, 2)
	c.date = string(d)

	c.lastSecs = secs
	c.valid = true
}

// appendPadded appends v zero-padded to width digits.
func appendPadded(dst []byte, v, width int) []byte {
	var tmp [8]byte
	for i := width - 1; i >= 0; i-- {
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, tmp[:width]...)
}

// appendMicros appends the six-digit zero-padded microsecond field.
func appendMicros(dst []byte, micros uint32) []byte {
	return appendPadded(dst, int(micros), 6)
}

// offsetString renders a zone offset in seconds as ±HH:MM.
func offsetString(offset int) string {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	b := []byte{sign}
	b = appendPadded(b, offset/3600, 2)
	b = append(b, ':')
	b = appendPadded(b, (offset%3600)/60, 2)
	return string(b)
}
