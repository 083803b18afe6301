// Package logger builds slog loggers for lizardui processes.
//
// [New] creates a JSON or text logger with a minimum level, optional context
// extractors (for example the request ID) and optional Sentry fan-out:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithExtractors(middlewares.RequestIDExtractor()),
//	    logger.WithSentry(logger.SentryConfig{DSN: dsn}),
//	)
//
// [NewNope] returns a logger that discards everything.
//
// [NewCounter] wraps a logger and counts records per level. The configcheck
// command uses it to decide whether any check reported a problem:
//
//	log, counter := logger.NewCounter(base)
//	registry.Run()
//	if counter.Errors() > 0 {
//	    os.Exit(1)
//	}
package logger
