package internal

import (
	"context"
	"io"
)

// Handler declares routes on a router.
//
// Example:
//
//	type PagesHandler struct{}
//
//	func (h *PagesHandler) Routes(r lizardui.Router) {
//	    r.GET("/breadcrumbs/", h.breadcrumbs)
//	    r.Name("lizard_ui.breadcrumbs", "/breadcrumbs/")
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands the request to the app's error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error

// Component is the interface for renderable fragments.
// This is compatible with templ.Component.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplateRenderer renders a named template with a context map.
// pkg/templates.Engine is the default implementation.
type TemplateRenderer interface {
	RenderTemplate(ctx context.Context, w io.Writer, name string, data map[string]any) error
}
