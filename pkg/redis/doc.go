// Package redis opens go-redis clients for the session store.
//
//	client, err := redis.Open(ctx, redis.Config{URL: "redis://localhost:6379/0"})
//	if err != nil {
//	    return err
//	}
//	store := session.NewRedisStore(client)
//
// [Healthcheck] plugs into the readiness endpoint and [Shutdown] into the
// server's shutdown hooks. Startup retries use linear backoff.
package redis
