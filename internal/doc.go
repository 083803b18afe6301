// Package internal implements the host application that lizardui pages run in.
//
// This package is internal. Import "github.com/dmitrymomot/lizardui", which
// re-exports the public API.
//
// # Core Types
//
//   - App: router, named routes, templates, sessions and server lifecycle
//   - Context: request/response access, rendering, sessions, URL reversal
//   - Router: route declaration with groups, prefixes and route names
//   - Handler: a type that declares routes on a Router
//   - HandlerFunc: a route handler returning an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: turns a handler error into a response
//   - TemplateRenderer: renders a named template with a context map
//
// # Request Flow
//
// Global middleware runs first, then route middleware in registration order,
// then the handler. A returned error goes to the ErrorHandler unless the
// response was already written. Template output is buffered, so a failing
// template never produces a partial page.
//
// # Named Routes
//
// Router.Name binds a symbolic name to a pattern relative to the enclosing
// Route prefix. Context.Reverse turns the name and parameters back into a path:
//
//	r.Route("/ui", func(r lizardui.Router) {
//	    r.GET("/testbox/{name}/", box)
//	    r.Name("lizard_ui.testbox", "/testbox/{name}/")
//	})
//
//	u, err := c.Reverse("lizard_ui.testbox", map[string]string{"name": "a"})
//	// u == "/ui/testbox/a/"
//
// # Sessions
//
// WithSession enables cookie-bound server-side sessions. Sessions load lazily,
// dirty sessions are saved just before the response is written, and
// AuthenticateSession rotates the token.
package internal
