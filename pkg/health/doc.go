// Package health serves liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs every named [CheckFunc] concurrently under a shared
// timeout and answers 503 if any of them fails:
//
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "postgres": db.Healthcheck(pool),
//	    "redis":    redis.Healthcheck(client),
//	}))
//
// Responses are plain text unless the client asks for JSON through the
// Accept header or ?format=json.
package health
