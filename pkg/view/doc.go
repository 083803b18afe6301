// Package view turns "compute a context, then render a template" into a
// single Run method.
//
// A view is any type implementing [View]. [Handler] builds the route handler:
// for every request it calls the factory for a fresh instance, creates the
// [Invocation] and its [Data], stores the instance under the reserved key
// "view", calls Run and then renders. Templates can call back into the view:
//
//	type Greeting struct {
//	    name string
//	}
//
//	func (g *Greeting) TemplateName() string { return "greeting.html" }
//
//	func (g *Greeting) Run(inv *view.Invocation) error {
//	    g.name = inv.Kwarg("name")
//	    return inv.Data.Set("title", "Hello")
//	}
//
//	func (g *Greeting) Shout() string { return strings.ToUpper(g.name) }
//
//	r.GET("/greet/{name}/", view.Handler(func() view.View { return &Greeting{} }))
//
// and in greeting.html:
//
//	<h1>{{ title }}, {{ view.Shout }}</h1>
//
// If Run returns an error, nothing is rendered and the error goes to the
// application's error handler. Rendering is buffered, so a response is never
// partially written.
//
// A view that should produce something other than a template implements
// [Renderer]. Embedding [Unimplemented] gives a Run that fails with
// [ErrNotImplemented].
package view
