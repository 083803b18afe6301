package lizardui_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui"
)

type routes func(r lizardui.Router)

func (f routes) Routes(r lizardui.Router) { f(r) }

func TestAppRoutes(t *testing.T) {
	t.Parallel()

	app := lizardui.New(lizardui.WithHandlers(routes(func(r lizardui.Router) {
		r.GET("/", func(c lizardui.Context) error { return c.String(http.StatusOK, "index") })
		r.Route("/api", func(r lizardui.Router) {
			r.GET("/user/{id}", func(c lizardui.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id")})
			})
			r.Name("api.user", "/user/{id}")
		})
	})))

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "index", rec.Body.String())

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/42", nil))
	assert.JSONEq(t, `{"id":"42"}`, rec.Body.String())

	path, err := app.URLs().Reverse("api.user", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/api/user/7", path)
}

func TestAppErrors(t *testing.T) {
	t.Parallel()

	app := lizardui.New(lizardui.WithHandlers(routes(func(r lizardui.Router) {
		r.GET("/missing", func(lizardui.Context) error { return lizardui.ErrNotFound("no such box") })
		r.GET("/broken", func(lizardui.Context) error { return errors.New("db down") })
	})))

	tests := []struct {
		path string
		code int
		body string
	}{
		{"/missing", http.StatusNotFound, "no such box"},
		{"/broken", http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.code, rec.Code, tt.path)
		assert.Contains(t, rec.Body.String(), tt.body, tt.path)
	}
}

func TestRunLifecycle(t *testing.T) {
	t.Parallel()

	var started, stopped atomic.Bool
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- lizardui.New().Run("127.0.0.1:0",
			lizardui.WithContext(ctx),
			lizardui.ShutdownTimeout(time.Second),
			lizardui.StartupHook(func(context.Context) error {
				started.Store(true)
				return nil
			}),
			lizardui.ShutdownHook(func(context.Context) error {
				stopped.Store(true)
				return nil
			}),
		)
	}()

	require.Eventually(t, started.Load, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, stopped.Load())
}

func TestRunStartupHookFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := lizardui.New().Run("127.0.0.1:0",
		lizardui.StartupHook(func(context.Context) error { return boom }),
	)
	assert.ErrorIs(t, err, boom)
}
