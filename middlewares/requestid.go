package middlewares

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/dmitrymomot/lizardui"
)

type requestIDKey struct{}

// DefaultRequestIDHeaders are checked in order for an upstream request ID.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

type requestIDConfig struct {
	generate       func() string
	responseHeader string
	headers        []string
}

// RequestIDOption configures RequestID.
type RequestIDOption func(*requestIDConfig)

// WithRequestIDHeaders sets the headers checked for an existing ID.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		cfg.headers = headers
	}
}

// WithRequestIDGenerator replaces the ULID generator.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		if gen != nil {
			cfg.generate = gen
		}
	}
}

// RequestID tags every request with an ID, reusing an upstream one when
// present, and echoes it in the X-Request-ID response header.
func RequestID(opts ...RequestIDOption) lizardui.Middleware {
	cfg := &requestIDConfig{
		generate:       func() string { return ulid.Make().String() },
		responseHeader: "X-Request-ID",
		headers:        DefaultRequestIDHeaders,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next lizardui.HandlerFunc) lizardui.HandlerFunc {
		return func(c lizardui.Context) error {
			var id string
			for _, h := range cfg.headers {
				if id = c.Header(h); id != "" {
					break
				}
			}
			if id == "" {
				id = cfg.generate()
			}

			c.Set(requestIDKey{}, id)
			c.SetHeader(cfg.responseHeader, id)
			return next(c)
		}
	}
}

// GetRequestID returns the current request ID, or "".
func GetRequestID(c lizardui.Context) string {
	id, _ := c.Get(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds request_id to log records. Pass it to WithLogger.
func RequestIDExtractor() lizardui.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
			return slog.String("request_id", id), true
		}
		return slog.Attr{}, false
	}
}
