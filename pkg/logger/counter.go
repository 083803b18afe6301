package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Counter counts records per level as they pass through to the wrapped handler.
type Counter struct {
	debug, info, warn, errs atomic.Int64
}

// Count returns the number of records logged at exactly level l.
// Levels between the standard ones round down.
func (c *Counter) Count(l slog.Level) int64 {
	switch {
	case l >= slog.LevelError:
		return c.errs.Load()
	case l >= slog.LevelWarn:
		return c.warn.Load()
	case l >= slog.LevelInfo:
		return c.info.Load()
	default:
		return c.debug.Load()
	}
}

// Errors returns the number of records at error level or above.
func (c *Counter) Errors() int64 {
	return c.errs.Load()
}

func (c *Counter) add(l slog.Level) {
	switch {
	case l >= slog.LevelError:
		c.errs.Add(1)
	case l >= slog.LevelWarn:
		c.warn.Add(1)
	case l >= slog.LevelInfo:
		c.info.Add(1)
	default:
		c.debug.Add(1)
	}
}

// NewCounter wraps log so that every record is counted, including records
// the wrapped handler drops because of its level.
func NewCounter(log *slog.Logger) (*slog.Logger, *Counter) {
	if log == nil {
		log = NewNope()
	}
	c := &Counter{}
	return slog.New(&countingHandler{next: log.Handler(), counter: c}), c
}

type countingHandler struct {
	next    slog.Handler
	counter *Counter
}

func (h *countingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

func (h *countingHandler) Handle(ctx context.Context, rec slog.Record) error {
	h.counter.add(rec.Level)
	if !h.next.Enabled(ctx, rec.Level) {
		return nil
	}
	return h.next.Handle(ctx, rec)
}

func (h *countingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &countingHandler{next: h.next.WithAttrs(attrs), counter: h.counter}
}

func (h *countingHandler) WithGroup(name string) slog.Handler {
	return &countingHandler{next: h.next.WithGroup(name), counter: h.counter}
}
