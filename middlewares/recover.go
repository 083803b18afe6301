package middlewares

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/dmitrymomot/lizardui"
)

// DefaultStackSize caps the captured stack trace.
const DefaultStackSize = 4096

// PanicError carries a recovered panic to the error handler.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsPanicError extracts a PanicError from err.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	ok := errors.As(err, &pe)
	return pe, ok
}

type recoverConfig struct {
	stackSize int
}

// RecoverOption configures Recover.
type RecoverOption func(*recoverConfig)

// WithStackSize sets the stack trace limit. Zero disables stack capture.
func WithStackSize(n int) RecoverOption {
	return func(cfg *recoverConfig) {
		cfg.stackSize = max(n, 0)
	}
}

// Recover turns a panic in a handler into a *PanicError, which the default
// error handler renders as 500.
func Recover(opts ...RecoverOption) lizardui.Middleware {
	cfg := &recoverConfig{stackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next lizardui.HandlerFunc) lizardui.HandlerFunc {
		return func(c lizardui.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				var stack []byte
				if cfg.stackSize > 0 {
					stack = make([]byte, cfg.stackSize)
					stack = stack[:runtime.Stack(stack, false)]
				}
				c.LogError("panic recovered", "panic", r, "stack", string(stack))
				err = &PanicError{Value: r, Stack: stack}
			}()
			return next(c)
		}
	}
}
