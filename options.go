package modserve

import (
	"io"
	"log/slog"
	"time"
)

// Option customizes a Module.
type Option func(*Module)

// WithTimeout overrides the idle-shutdown window. Non-positive durations are
// ignored.
func WithTimeout(d time.Duration) Option {
	return func(m *Module) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithLogger overrides the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Module) {
		if l != nil {
			m.log = l
		}
	}
}

// WithIO sets the reader and writer backing the module's connection. Tests
// use this to stand a pipe pair in for the real stdio.
func WithIO(r io.Reader, w io.Writer) Option {
	return func(m *Module) {
		if r != nil {
			m.r = r
		}
		if w != nil {
			m.w = w
		}
	}
}

// WithReader overrides the input stream.
func WithReader(r io.Reader) Option {
	return func(m *Module) {
		if r != nil {
			m.r = r
		}
	}
}

// WithWriter overrides the output stream.
func WithWriter(w io.Writer) Option {
	return func(m *Module) {
		if w != nil {
			m.w = w
		}
	}
}
