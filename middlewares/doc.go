// Package middlewares holds request middleware for lizardui apps.
//
//	app := lizardui.New(
//	    lizardui.WithLogger("lizardui", middlewares.RequestIDExtractor()),
//	    lizardui.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	)
package middlewares
