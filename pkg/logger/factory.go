package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the output encoding of a logger.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type config struct {
	out        io.Writer
	format     Format
	level      slog.Level
	extractors []ContextExtractor
	sentry     *SentryConfig
}

// Option configures a logger created by New.
type Option func(*config)

// WithOutput sets the destination. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.out = w
		}
	}
}

// WithFormat sets the record encoding. Default: FormatJSON.
func WithFormat(f Format) Option {
	return func(c *config) {
		if f == FormatJSON || f == FormatText {
			c.format = f
		}
	}
}

// WithLevel sets the minimum level. Default: slog.LevelInfo.
func WithLevel(l slog.Level) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithExtractors adds context extractors applied on every record.
func WithExtractors(ex ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, ex...)
	}
}

// WithSentry fans warnings and errors out to Sentry.
// An empty DSN leaves Sentry disabled.
func WithSentry(cfg SentryConfig) Option {
	return func(c *config) {
		if cfg.DSN != "" {
			c.sentry = &cfg
		}
	}
}

// New creates a logger. Without options it writes JSON at info level to stdout.
//
// Example:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithExtractors(middlewares.RequestIDExtractor()),
//	)
func New(opts ...Option) *slog.Logger {
	cfg := &config{out: os.Stdout, format: FormatJSON, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(cfg)
	}

	hopts := &slog.HandlerOptions{Level: cfg.level}
	var h slog.Handler
	if cfg.format == FormatText {
		h = slog.NewTextHandler(cfg.out, hopts)
	} else {
		h = slog.NewJSONHandler(cfg.out, hopts)
	}

	if cfg.sentry != nil {
		h = withSentry(h, *cfg.sentry)
	}

	return slog.New(NewLogHandlerDecorator(h, cfg.extractors...))
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Unknown values map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
