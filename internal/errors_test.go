package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui/internal"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("db down")
	herr := internal.ErrNotFound("no such page", internal.WithDetail("slug"), internal.WithError(cause))
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", herr))

	got := internal.AsHTTPError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, http.StatusNotFound, got.Code)
	assert.Equal(t, "slug", got.Detail)
	assert.ErrorIs(t, wrapped, cause)
	assert.True(t, internal.IsHTTPError(wrapped))

	assert.Nil(t, internal.AsHTTPError(errors.New("plain")))
	assert.Nil(t, internal.AsHTTPError(nil))
	assert.False(t, internal.IsHTTPError(nil))
}

func TestDefaultErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("http error keeps its status", func(t *testing.T) {
		t.Parallel()
		w := within(t, httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			return internal.ErrForbidden("go away")
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "go away", w.Body.String())
	})

	t.Run("plain error becomes 500", func(t *testing.T) {
		t.Parallel()
		w := within(t, httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			return errors.New("boom")
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), w.Body.String())
	})

	t.Run("error after write is ignored", func(t *testing.T) {
		t.Parallel()
		w := within(t, httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			_ = c.String(http.StatusAccepted, "partial")
			return errors.New("late")
		})
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "partial", w.Body.String())
	})

	t.Run("custom handler", func(t *testing.T) {
		t.Parallel()
		custom := internal.WithErrorHandler(func(c internal.Context, err error) error {
			return c.JSON(http.StatusTeapot, map[string]string{"error": err.Error()})
		})
		w := within(t, httptest.NewRequest(http.MethodGet, "/", nil), func(c internal.Context) error {
			return errors.New("brew")
		}, custom)
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.JSONEq(t, `{"error":"brew"}`, w.Body.String())
	})
}
