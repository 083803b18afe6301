// Package configcheck collects configuration checkers and runs them in a batch.
//
// A checker is a function that inspects the environment and logs what is
// wrong. It never returns an error and never stops early; the driver decides
// whether logged problems are fatal.
//
// Checkers register on a [Registry]. Package-level functions use [Default],
// so packages can register at init time:
//
//	var _ = configcheck.Register(func() {
//	    if os.Getenv("SECRET_KEY") == "" {
//	        slog.Error("SECRET_KEY is missing")
//	    }
//	})
//
// Tests should build an isolated registry with [New] instead of touching Default.
package configcheck
