package view

import (
	"fmt"
	"maps"
	"net/http"
	"slices"

	"github.com/dmitrymomot/lizardui"
)

// View computes the template context for one request.
type View interface {
	Run(inv *Invocation) error
}

// Renderer replaces the default template rendering.
type Renderer interface {
	RenderResponse(inv *Invocation) error
}

// TemplateNamer names the template a view renders.
type TemplateNamer interface {
	TemplateName() string
}

// Unimplemented can be embedded by views that are not finished yet.
type Unimplemented struct{}

// Run always fails with ErrNotImplemented.
func (Unimplemented) Run(*Invocation) error {
	return ErrNotImplemented
}

// Invocation is one request's handling of a view.
type Invocation struct {
	// Data is the template context.
	Data *Data

	ctx      lizardui.Context
	view     View
	args     []string
	kwargs   map[string]string
	template string
}

// Request returns the HTTP request.
func (inv *Invocation) Request() *http.Request {
	return inv.ctx.Request()
}

// Context returns the request context.
func (inv *Invocation) Context() lizardui.Context {
	return inv.ctx
}

// View returns the running view.
func (inv *Invocation) View() View {
	return inv.view
}

// Args returns route parameter values in pattern order.
func (inv *Invocation) Args() []string {
	return slices.Clone(inv.args)
}

// Kwargs returns route parameters by name.
func (inv *Invocation) Kwargs() map[string]string {
	return maps.Clone(inv.kwargs)
}

// Kwarg returns a single route parameter, or "".
func (inv *Invocation) Kwarg(name string) string {
	return inv.kwargs[name]
}

// Reverse resolves a named route.
func (inv *Invocation) Reverse(name string, params map[string]string) (string, error) {
	return inv.ctx.Reverse(name, params)
}

// TemplateName returns the template this invocation renders.
func (inv *Invocation) TemplateName() string {
	return inv.template
}

// RenderTemplate renders the invocation's template with Data and status.
// It is what Handler does for views that do not implement Renderer.
func (inv *Invocation) RenderTemplate(status int) error {
	if inv.template == "" {
		return fmt.Errorf("%w for %T", ErrNoTemplate, inv.view)
	}
	return inv.ctx.RenderTemplate(status, inv.template, inv.Data.Map())
}

type options struct {
	template   string
	withParams bool
}

// Option configures Handler.
type Option func(*options)

// WithTemplate sets the template name, overriding TemplateNamer.
func WithTemplate(name string) Option {
	return func(o *options) {
		o.template = name
	}
}

// WithParams copies route parameters into Data before Run.
func WithParams() Option {
	return func(o *options) {
		o.withParams = true
	}
}

// Handler returns a route handler that runs a fresh view from factory on
// every request and renders it.
func Handler(factory func() View, opts ...Option) lizardui.HandlerFunc {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return func(c lizardui.Context) error {
		inv, err := newInvocation(c, factory(), o)
		if err != nil {
			return err
		}
		return dispatch(inv)
	}
}

func newInvocation(c lizardui.Context, v View, o *options) (*Invocation, error) {
	params := c.Params()
	inv := &Invocation{
		Data:     NewData(),
		ctx:      c,
		view:     v,
		args:     make([]string, 0, len(params)),
		kwargs:   make(map[string]string, len(params)),
		template: o.template,
	}
	for _, p := range params {
		inv.args = append(inv.args, p.Value)
		inv.kwargs[p.Key] = p.Value
	}

	if inv.template == "" {
		if tn, ok := v.(TemplateNamer); ok {
			inv.template = tn.TemplateName()
		}
	}

	inv.Data.setView(v)
	if o.withParams {
		for _, p := range params {
			if err := inv.Data.Set(p.Key, p.Value); err != nil {
				return nil, fmt.Errorf("route param: %w", err)
			}
		}
	}
	return inv, nil
}

// dispatch runs the view and renders the result. Rendering is skipped when
// Run fails.
func dispatch(inv *Invocation) error {
	if err := inv.view.Run(inv); err != nil {
		return err
	}
	if r, ok := inv.view.(Renderer); ok {
		return r.RenderResponse(inv)
	}
	return inv.RenderTemplate(http.StatusOK)
}
