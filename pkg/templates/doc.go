// Package templates renders pongo2 (Django-syntax) templates for lizardui.
//
// The engine ships the add-on's default templates under "lizard_ui/":
//
//	lizard_ui/lizardbase.html     base layout and the application screen
//	lizard_ui/login.html          login form
//	lizard_ui/breadcrumbs.html    breadcrumb example
//	lizard_ui/testview.html       demo views
//	lizard_ui/testbox.html
//	lizard_ui/testcontainer.html
//
// Applications override any of them, or add their own, by passing a file
// system with WithFS or a directory with WithDir. Those sources are searched
// before the defaults:
//
//	engine, err := templates.New(templates.WithDir("templates"))
//
// Parsed templates are cached. Concurrent first loads of the same template
// parse it once.
//
// Two filters are registered: "sanitize" strips unsafe HTML and "markdown"
// converts Markdown to sanitized HTML.
package templates
