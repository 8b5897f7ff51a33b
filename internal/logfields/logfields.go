package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyCommand    = "command"
	KeyInput      = "input"
	KeyOutput     = "output"
	KeyFormat     = "format"
	KeyEvent      = "event"
	KeyDir        = "dir"
	KeyBytesIn    = "bytes_in"
	KeyBytesOut   = "bytes_out"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Command(name string) slog.Attr   { return slog.String(KeyCommand, name) }
func Input(path string) slog.Attr     { return slog.String(KeyInput, path) }
func Output(path string) slog.Attr    { return slog.String(KeyOutput, path) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Event(name string) slog.Attr     { return slog.String(KeyEvent, name) }
func Dir(path string) slog.Attr       { return slog.String(KeyDir, path) }
func BytesIn(n int) slog.Attr         { return slog.Int(KeyBytesIn, n) }
func BytesOut(n int) slog.Attr        { return slog.Int(KeyBytesOut, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

// Elapsed returns the duration since start as a DurationMS attribute.
func Elapsed(start time.Time) slog.Attr {
	return DurationMS(float64(time.Since(start).Microseconds()) / 1000)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
