package redis_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui/pkg/redis"
)

func TestOpenValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := redis.Open(ctx, redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)

	for _, url := range []string{"http://localhost:6379", "localhost:6379", "postgres://localhost"} {
		_, err := redis.Open(ctx, redis.Config{URL: url})
		assert.ErrorIs(t, err, redis.ErrFailedToParseURL, url)
	}
}

func TestOpenStopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := redis.Open(ctx, redis.Config{
		URL:           "redis://127.0.0.1:1/0",
		RetryAttempts: 10,
		RetryInterval: time.Second,
		Timeout:       20 * time.Millisecond,
	})
	assert.ErrorIs(t, err, redis.ErrConnectionFailed)
}

func TestHealthcheckNilClient(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, redis.Healthcheck(nil)(context.Background()), redis.ErrHealthcheckFailed)
}

type closer struct{ err error }

func (c closer) Close() error { return c.err }

func TestShutdown(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	assert.NoError(t, redis.Shutdown(closer{})(context.Background()))
	assert.ErrorIs(t, redis.Shutdown(closer{boom})(context.Background()), boom)
}

func TestOpenIntegration(t *testing.T) {
	url := os.Getenv("LIZARDUI_TEST_REDIS_URL")
	if url == "" {
		t.Skip("LIZARDUI_TEST_REDIS_URL not set")
	}

	client, err := redis.Open(context.Background(), redis.Config{URL: url})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.NoError(t, redis.Healthcheck(client)(context.Background()))
}
