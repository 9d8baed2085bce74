package sentry

import (
	"io"
	"strings"

	gosentry "github.com/getsentry/sentry-go"
)

// Level is the severity a Writer reports at.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Writer tees log output to an inner writer and forwards it to Sentry.
// Errors become events; warnings and info become breadcrumbs. Consecutive
// duplicate messages are forwarded once so a tick loop that logs the same
// failure every 100ms does not flood the project quota.
type Writer struct {
	inner io.Writer
	level Level
	last  string
}

// NewWriter wraps inner with Sentry forwarding at the given level.
func NewWriter(inner io.Writer, level Level) *Writer {
	return &Writer{inner: inner, level: level}
}

func (w *Writer) Write(p []byte) (int, error) {
	// The local log file gets every line regardless of telemetry state.
	n, err := w.inner.Write(p)

	if !enabled {
		return n, err
	}

	msg := strings.TrimSpace(string(p))
	if msg == "" || msg == w.last {
		return n, err
	}
	w.last = msg

	switch w.level {
	case LevelError:
		gosentry.CaptureMessage(msg)
	case LevelWarning:
		gosentry.AddBreadcrumb(&gosentry.Breadcrumb{
			Level:    gosentry.LevelWarning,
			Category: "log",
			Message:  msg,
		})
	case LevelInfo:
		gosentry.AddBreadcrumb(&gosentry.Breadcrumb{
			Level:    gosentry.LevelInfo,
			Category: "log",
			Message:  msg,
		})
	}

	return n, err
}
