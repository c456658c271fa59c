// This file is part of the rp2040 kernel.

package ktest

import "strings"

// CappedWriter accumulates writes up to a fixed limit and silently ignores
// anything beyond it. Useful for asserting on the early part of a long log
// without letting a runaway test blow up memory.
type CappedWriter struct {
	limit int
	buf   strings.Builder
}

// NewCappedWriter returns a CappedWriter that keeps at most limit bytes.
func NewCappedWriter(limit int) (*CappedWriter, error) {
	return &CappedWriter{limit: limit}, nil
}

func (c *CappedWriter) Write(p []byte) (int, error) {
	n := len(p)
	room := c.limit - c.buf.Len()
	if room <= 0 {
		return n, nil
	}
	if room < len(p) {
		p = p[:room]
	}
	c.buf.Write(p)
	return n, nil
}

// String returns the bytes captured so far.
func (c *CappedWriter) String() string {
	return c.buf.String()
}

// Reset discards everything captured so far.
func (c *CappedWriter) Reset() {
	c.buf.Reset()
}

// RingWriter keeps only the most recent limit bytes written to it.
type RingWriter struct {
	limit int
	buf   []byte
}

// NewRingWriter returns a RingWriter that keeps at most limit trailing
// bytes.
func NewRingWriter(limit int) (*RingWriter, error) {
	return &RingWriter{limit: limit, buf: make([]byte, 0, limit)}, nil
}

func (r *RingWriter) Write(p []byte) (int, error) {
	r.buf = append(r.buf, p...)
	if len(r.buf) > r.limit {
		r.buf = r.buf[len(r.buf)-r.limit:]
	}
	return len(p), nil
}

// String returns the trailing bytes currently retained.
func (r *RingWriter) String() string {
	return string(r.buf)
}

// Reset discards everything captured so far.
func (r *RingWriter) Reset() {
	r.buf = r.buf[:0]
}
