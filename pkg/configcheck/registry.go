package configcheck

import (
	"slices"
	"sync"
)

// CheckerFunc inspects configuration and reports problems through logging.
type CheckerFunc func()

// Registry is an ordered, append-only list of checkers. It is safe for
// concurrent use.
type Registry struct {
	mu       sync.Mutex
	checkers []CheckerFunc
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Default is the process-wide registry.
var Default = New()

// Register appends fn and returns it unchanged. Registering the same
// function twice makes it run twice.
func (r *Registry) Register(fn CheckerFunc) CheckerFunc {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, fn)
	return fn
}

// Checkers returns the registered checkers in registration order.
// The returned slice is a copy.
func (r *Registry) Checkers() []CheckerFunc {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.checkers)
}

// Len returns the number of registered checkers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.checkers)
}

// Reset removes every checker.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = nil
}

// Run calls every checker in registration order. Checkers registered while
// Run is in progress are not called.
func (r *Registry) Run() {
	for _, fn := range r.Checkers() {
		if fn != nil {
			fn()
		}
	}
}

// Register appends fn to Default.
func Register(fn CheckerFunc) CheckerFunc {
	return Default.Register(fn)
}

// Checkers returns the checkers registered on Default.
func Checkers() []CheckerFunc {
	return Default.Checkers()
}
