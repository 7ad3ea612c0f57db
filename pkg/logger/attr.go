package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Pattern records a pattern, truncated to keep records small.
func Pattern(p string) slog.Attr {
	const limit = 128
	if r := []rune(p); len(r) > limit {
		p = string(r[:limit]) + "…"
	}
	return slog.String("pattern", p)
}

// Preset records a preset or library entry name.
func Preset(name string) slog.Attr {
	return slog.String("preset", name)
}

// Count records how many items an operation produced.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records an elapsed time.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// RequestID records the request identifier. An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
