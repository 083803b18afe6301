// Package lizardui is a UI add-on for chi-based web applications.
//
// It provides default settings and a settings sanity check, a view layer
// that turns "fill a context, then render a template" into a single Run
// method, and a set of ready-made pages: login and logout, a breadcrumb
// example, the application screen and demo box/container views.
//
// # Quick Start
//
//	engine, err := templates.New()
//	if err != nil {
//	    return err
//	}
//
//	app := lizardui.New(
//	    lizardui.WithLogger("lizardui", middlewares.RequestIDExtractor()),
//	    lizardui.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    lizardui.WithTemplates(engine),
//	    lizardui.WithSession(session.NewMemoryStore()),
//	    lizardui.WithHandlers(
//	        handlers.NewAccounts(auth.NewMemory()),
//	        handlers.NewPages(),
//	    ),
//	)
//	return app.Run(":8080")
//
// # Views
//
// A view is any type with a Run method. The dispatch function built by
// view.Handler creates a fresh instance per request, stores it in the
// template context under "view", calls Run and renders the template:
//
//	type Dashboard struct{}
//
//	func (d *Dashboard) TemplateName() string { return "dashboard.html" }
//
//	func (d *Dashboard) Run(inv *view.Invocation) error {
//	    return inv.Data.Set("title", "Dashboard")
//	}
//
//	r.GET("/dashboard/", view.Handler(func() view.View { return &Dashboard{} }))
//
// # Configuration Checks
//
// Package configcheck keeps an ordered registry of checker functions. The
// built-in settings checker logs one error per missing setting or app:
//
//	configcheck.RegisterDefaults(configcheck.Default, s, log)
//	configcheck.Default.Run()
//
// # Packages
//
//   - pkg/configcheck: checker registry and the settings checker
//   - pkg/view: view adaptation layer
//   - pkg/settings: settings loading and default values
//   - pkg/templates: pongo2 template engine with the default templates
//   - pkg/urls: named route reversal
//   - pkg/session: session model and stores
//   - pkg/auth: username/password authentication backends
//   - pkg/tx: wrapper around the Transifex client
//   - pkg/logger, pkg/health, pkg/db, pkg/redis: infrastructure
//   - handlers: login, logout and the stock pages
//   - middlewares: request IDs and panic recovery
//   - cmd/lizardui: serve, configcheck, settings defaults, user create, tx
package lizardui
