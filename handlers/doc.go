// Package handlers provides the stock lizard_ui routes: login and logout,
// the breadcrumb example, the application screen and a few demo views.
//
//	app := lizardui.New(
//	    lizardui.WithTemplates(engine),
//	    lizardui.WithSession(session.NewMemoryStore()),
//	    lizardui.WithHandlers(handlers.NewAccounts(authenticator), handlers.NewPages()),
//	)
package handlers
