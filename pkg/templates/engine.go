package templates

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path"
	"sync"

	"github.com/flosch/pongo2/v6"
	"golang.org/x/sync/singleflight"
)

//go:embed files
var embedded embed.FS

// Defaults returns the built-in templates rooted so that names start with "lizard_ui/".
func Defaults() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		panic(err)
	}
	return sub
}

type config struct {
	sources []fs.FS
	globals map[string]any
	noCache bool
}

// Option configures an Engine.
type Option func(*config)

// WithFS adds a template source searched before the defaults. Sources added
// earlier win.
func WithFS(fsys fs.FS) Option {
	return func(c *config) {
		if fsys != nil {
			c.sources = append(c.sources, fsys)
		}
	}
}

// WithDir adds a directory source searched before the defaults.
func WithDir(dir string) Option {
	return func(c *config) {
		if dir != "" {
			c.sources = append(c.sources, os.DirFS(dir))
		}
	}
}

// WithGlobals sets values available to every template.
func WithGlobals(g map[string]any) Option {
	return func(c *config) {
		if c.globals == nil {
			c.globals = make(map[string]any, len(g))
		}
		maps.Copy(c.globals, g)
	}
}

// WithoutCache reparses templates on every render. Use during development.
func WithoutCache() Option {
	return func(c *config) {
		c.noCache = true
	}
}

// rootLoader resolves every name from the source root, so
// {% extends "lizard_ui/lizardbase.html" %} means the same file from any
// template directory.
type rootLoader struct {
	*pongo2.FSLoader
}

func (rootLoader) Abs(_, name string) string {
	return path.Clean(name)
}

// Engine renders named templates. It is safe for concurrent use.
type Engine struct {
	set     *pongo2.TemplateSet
	sources []fs.FS
	noCache bool

	mu    sync.RWMutex
	cache map[string]*pongo2.Template
	group singleflight.Group
}

// New creates an engine over the configured sources plus the defaults.
func New(opts ...Option) (*Engine, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := registerFilters(); err != nil {
		return nil, fmt.Errorf("templates: register filters: %w", err)
	}

	sources := append(cfg.sources, Defaults())
	loaders := make([]pongo2.TemplateLoader, 0, len(sources))
	for _, src := range sources {
		loaders = append(loaders, rootLoader{pongo2.NewFSLoader(src)})
	}

	set := pongo2.NewSet("lizardui", loaders...)
	if len(cfg.globals) > 0 {
		set.Globals.Update(pongo2.Context(cfg.globals))
	}

	return &Engine{
		set:     set,
		sources: sources,
		noCache: cfg.noCache,
		cache:   make(map[string]*pongo2.Template),
	}, nil
}

// RenderTemplate executes name with data and writes the output to w.
// Nothing is written when rendering fails.
func (e *Engine) RenderTemplate(ctx context.Context, w io.Writer, name string, data map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tpl, err := e.Lookup(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteWriter(pongo2.Context(data), &buf); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRender, name, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// Render executes name with data and returns the output.
func (e *Engine) Render(name string, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := e.RenderTemplate(context.Background(), &buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Exists reports whether any source provides name.
func (e *Engine) Exists(name string) bool {
	for _, src := range e.sources {
		if _, err := fs.Stat(src, name); err == nil {
			return true
		}
	}
	return false
}

// Lookup returns the parsed template for name.
func (e *Engine) Lookup(name string) (*pongo2.Template, error) {
	if !e.Exists(name) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if e.noCache {
		return e.parse(name)
	}

	e.mu.RLock()
	tpl, ok := e.cache[name]
	e.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	v, err, _ := e.group.Do(name, func() (any, error) {
		e.mu.RLock()
		cached, ok := e.cache[name]
		e.mu.RUnlock()
		if ok {
			return cached, nil
		}

		tpl, err := e.parse(name)
		if err != nil {
			return nil, err
		}
		e.mu.Lock()
		e.cache[name] = tpl
		e.mu.Unlock()
		return tpl, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*pongo2.Template), nil
}

func (e *Engine) parse(name string) (*pongo2.Template, error) {
	tpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("templates: parse %s: %w", name, err)
	}
	return tpl, nil
}
