package urls

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

var (
	// ErrNoReverseMatch is returned when a name cannot be turned into a path.
	ErrNoReverseMatch = errors.New("urls: no reverse match")

	// ErrDuplicateName is returned when a name is registered twice with
	// different patterns.
	ErrDuplicateName = errors.New("urls: duplicate route name")
)

// Resolver holds named route patterns. It is safe for concurrent use.
//
// chi has no reverse routing and its {name} and {name:regexp} placeholders
// are the syntax gorilla/mux builds URLs from, so the patterns are kept as
// named mux routes used only for URL building.
type Resolver struct {
	router   *mux.Router
	patterns map[string]string
	mu       sync.RWMutex
}

// New creates an empty Resolver.
func New() *Resolver {
	return &Resolver{
		router:   mux.NewRouter(),
		patterns: make(map[string]string),
	}
}

// Register associates name with a chi route pattern.
// Registering the same name and pattern again is a no-op.
func (r *Resolver) Register(name, pattern string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrNoReverseMatch)
	}
	if strings.HasSuffix(pattern, "*") {
		return fmt.Errorf("%w: wildcard patterns cannot be reversed: %q", ErrNoReverseMatch, pattern)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.patterns[name]; ok {
		if existing == pattern {
			return nil
		}
		return fmt.Errorf("%w: %q is bound to %q", ErrDuplicateName, name, existing)
	}

	route := r.router.NewRoute().Path(pattern)
	if err := route.GetError(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrNoReverseMatch, pattern, err)
	}
	route.Name(name)
	r.patterns[name] = pattern
	return nil
}

// Pattern returns the pattern registered for name.
func (r *Resolver) Pattern(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patterns[name]
	return p, ok
}

// Names returns all registered route names, sorted.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reverse builds the path for name, substituting params into placeholders.
// Values are path-escaped before they are matched against the placeholder.
// Params not used by the pattern are ignored.
func (r *Resolver) Reverse(name string, params map[string]string) (string, error) {
	r.mu.RLock()
	route := r.router.Get(name)
	r.mu.RUnlock()
	if route == nil {
		return "", fmt.Errorf("%w: unknown route %q", ErrNoReverseMatch, name)
	}

	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, k, url.PathEscape(v))
	}

	u, err := route.URLPath(pairs...)
	if err != nil {
		return "", fmt.Errorf("%w: route %q: %w", ErrNoReverseMatch, name, err)
	}
	// Values are already escaped; Path holds them verbatim.
	return u.Path, nil
}

// MustReverse is like Reverse but panics on error.
// Intended for static route tables built at startup.
func (r *Resolver) MustReverse(name string, params map[string]string) string {
	path, err := r.Reverse(name, params)
	if err != nil {
		panic(err)
	}
	return path
}
