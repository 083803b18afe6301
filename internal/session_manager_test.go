package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui/pkg/session"
)

func TestSessionManager_CreateSession(t *testing.T) {
	t.Parallel()

	sm := NewSessionManager(session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "test-agent")
	req.RemoteAddr = "192.168.1.1:12345"

	sess, err := sm.CreateSession(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, sess)

	assert.NotEmpty(t, sess.ID)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "192.168.1.1", sess.IP)
	assert.Equal(t, "test-agent", sess.UserAgent)
	assert.True(t, sess.ExpiresAt.After(time.Now()))
	assert.False(t, sess.IsNew())
	assert.False(t, sess.IsDirty())
}

func TestSessionManager_LoadSession(t *testing.T) {
	t.Parallel()

	sm := NewSessionManager(session.NewMemoryStore())
	ctx := context.Background()

	created, err := sm.CreateSession(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	t.Run("with cookie", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "__sid", Value: created.Token})

		loaded, err := sm.LoadSession(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, created.ID, loaded.ID)
	})

	t.Run("without cookie", func(t *testing.T) {
		t.Parallel()
		loaded, err := sm.LoadSession(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "__sid", Value: "nope"})

		_, err := sm.LoadSession(ctx, req)
		require.ErrorIs(t, err, session.ErrNotFound)
	})
}

func TestSessionManager_SaveSession(t *testing.T) {
	t.Parallel()

	sm := NewSessionManager(session.NewMemoryStore(),
		WithSessionCookieName("test-sid"),
		WithSessionSecure(true),
		WithSessionHTTPOnly(true),
	)

	w := httptest.NewRecorder()
	sm.SaveSession(w, session.New("id", "token123", time.Now().Add(time.Hour)))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "test-sid", cookies[0].Name)
	assert.Equal(t, "token123", cookies[0].Value)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionManager_RotateToken(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore()
	sm := NewSessionManager(store)
	ctx := context.Background()

	sess, err := sm.CreateSession(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	oldToken := sess.Token

	require.NoError(t, sm.RotateToken(ctx, sess))
	assert.NotEqual(t, oldToken, sess.Token)

	_, err = store.Get(ctx, oldToken)
	require.ErrorIs(t, err, session.ErrNotFound)

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
}

func TestSessionManager_DeleteSession(t *testing.T) {
	t.Parallel()

	sm := NewSessionManager(session.NewMemoryStore())
	w := httptest.NewRecorder()
	sm.DeleteSession(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
