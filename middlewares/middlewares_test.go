package middlewares_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui"
	"github.com/dmitrymomot/lizardui/middlewares"
	"github.com/dmitrymomot/lizardui/pkg/logger"
)

type routes func(r lizardui.Router)

func (f routes) Routes(r lizardui.Router) { f(r) }

func do(t *testing.T, app *lizardui.App, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func TestRequestIDGenerated(t *testing.T) {
	t.Parallel()

	var seen string
	app := lizardui.New(
		lizardui.WithMiddleware(middlewares.RequestID()),
		lizardui.WithHandlers(routes(func(r lizardui.Router) {
			r.GET("/", func(c lizardui.Context) error {
				seen = middlewares.GetRequestID(c)
				return c.NoContent(http.StatusOK)
			})
		})),
	)

	rec := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	id := rec.Header().Get("X-Request-ID")
	assert.Equal(t, id, seen)
	_, err := ulid.ParseStrict(id)
	assert.NoError(t, err)
}

func TestRequestIDReusesUpstream(t *testing.T) {
	t.Parallel()

	app := lizardui.New(
		lizardui.WithMiddleware(middlewares.RequestID()),
		lizardui.WithHandlers(routes(func(r lizardui.Router) {
			r.GET("/", func(c lizardui.Context) error { return c.NoContent(http.StatusOK) })
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Correlation-ID", "upstream-1")
	rec := do(t, app, req)

	assert.Equal(t, "upstream-1", rec.Header().Get("X-Request-ID"))
}

func TestRequestIDExtractorTagsLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(middlewares.RequestIDExtractor()))

	app := lizardui.New(
		lizardui.WithCustomLogger(log),
		lizardui.WithMiddleware(middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "fixed" }))),
		lizardui.WithHandlers(routes(func(r lizardui.Router) {
			r.GET("/", func(c lizardui.Context) error {
				c.LogInfo("hello")
				return c.NoContent(http.StatusOK)
			})
		})),
	)

	do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	var rec map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "fixed", rec["request_id"])
}

func TestRecover(t *testing.T) {
	t.Parallel()

	var caught error
	app := lizardui.New(
		lizardui.WithMiddleware(middlewares.Recover()),
		lizardui.WithErrorHandler(func(c lizardui.Context, err error) error {
			caught = err
			return lizardui.DefaultErrorHandler(c, err)
		}),
		lizardui.WithHandlers(routes(func(r lizardui.Router) {
			r.GET("/boom", func(lizardui.Context) error { panic("kaboom") })
			r.GET("/ok", func(c lizardui.Context) error { return c.String(http.StatusOK, "fine") })
		})),
	)

	rec := do(t, app, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	pe, ok := middlewares.AsPanicError(caught)
	require.True(t, ok)
	assert.Equal(t, "kaboom", pe.Value)
	assert.NotEmpty(t, pe.Stack)

	rec = do(t, app, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, "fine", rec.Body.String())
}

func TestRecoverWithoutStack(t *testing.T) {
	t.Parallel()

	h := middlewares.Recover(middlewares.WithStackSize(0))(func(lizardui.Context) error { panic(42) })

	var caught error
	app := lizardui.New(
		lizardui.WithErrorHandler(func(c lizardui.Context, err error) error {
			caught = err
			return c.NoContent(http.StatusInternalServerError)
		}),
		lizardui.WithHandlers(routes(func(r lizardui.Router) { r.GET("/", h) })),
	)
	do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	pe, ok := middlewares.AsPanicError(caught)
	require.True(t, ok)
	assert.Equal(t, 42, pe.Value)
	assert.Empty(t, pe.Stack)
}
