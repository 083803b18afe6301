package internal_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/lizardui/internal"
)

type routesFunc func(r internal.Router)

func (f routesFunc) Routes(r internal.Router) { f(r) }

// serve builds an App with opts plus routes and sends req through it.
func serve(t *testing.T, req *http.Request, routes func(r internal.Router), opts ...internal.Option) *httptest.ResponseRecorder {
	t.Helper()

	opts = append(opts, internal.WithHandlers(routesFunc(routes)))
	app := internal.New(opts...)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

// within registers fn at GET / and runs it for req.
func within(t *testing.T, req *http.Request, fn func(c internal.Context) error, opts ...internal.Option) *httptest.ResponseRecorder {
	t.Helper()
	return serve(t, req, func(r internal.Router) { r.GET("/", fn) }, opts...)
}
