// Package db connects to PostgreSQL through a pgx pool and applies goose
// migrations.
//
//	pool, err := db.Connect(ctx, db.Config{URL: os.Getenv("DATABASE_URL")})
//	if err != nil {
//	    return err
//	}
//	if err := db.Migrate(ctx, pool, auth.Migrations, "", log); err != nil {
//	    return err
//	}
//
// [Healthcheck] plugs into the readiness endpoint and [Shutdown] into the
// server's shutdown hooks.
package db
