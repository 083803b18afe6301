package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui/pkg/session"
)

func fresh() *session.Session {
	return session.New("sid", "tok", time.Now().Add(time.Hour))
}

func TestNewSessionFlags(t *testing.T) {
	t.Parallel()

	s := fresh()
	assert.Equal(t, "sid", s.ID)
	assert.Equal(t, "tok", s.Token)
	assert.True(t, s.IsNew())
	assert.True(t, s.IsDirty())
	assert.NotNil(t, s.Values)
	assert.False(t, s.IsAuthenticated())

	s.ClearNew()
	s.ClearDirty()
	assert.False(t, s.IsNew())
	assert.False(t, s.IsDirty())

	s.MarkDirty()
	assert.True(t, s.IsDirty())
}

func TestIsAuthenticated(t *testing.T) {
	t.Parallel()

	s := fresh()
	empty := ""
	s.UserID = &empty
	assert.False(t, s.IsAuthenticated())

	uid := "u-1"
	s.UserID = &uid
	assert.True(t, s.IsAuthenticated())
}

func TestValuesMarkDirty(t *testing.T) {
	t.Parallel()

	s := fresh()
	s.ClearDirty()

	s.DeleteValue("missing")
	assert.False(t, s.IsDirty(), "deleting an absent key is a no-op")

	s.SetValue("k", "v")
	assert.True(t, s.IsDirty())

	v, ok := s.GetValue("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	s.ClearDirty()
	s.DeleteValue("k")
	assert.True(t, s.IsDirty())
	_, ok = s.GetValue("k")
	assert.False(t, ok)
}

func TestIsExpired(t *testing.T) {
	t.Parallel()

	s := fresh()
	assert.False(t, s.IsExpired())
	s.ExpiresAt = time.Now().Add(-time.Second)
	assert.True(t, s.IsExpired())
}

func TestClone(t *testing.T) {
	t.Parallel()

	s := fresh()
	uid := "u-1"
	s.UserID = &uid
	s.SetValue("k", 1)

	c := s.Clone()
	c.SetValue("k", 2)
	*c.UserID = "u-2"

	assert.Equal(t, 1, session.ValueOr(s, "k", 0))
	assert.Equal(t, "u-1", *s.UserID)
}

func TestValue(t *testing.T) {
	t.Parallel()

	s := fresh()
	s.SetValue("name", "lizard")
	s.SetValue("count", 3)

	name, err := session.Value[string](s, "name")
	require.NoError(t, err)
	assert.Equal(t, "lizard", name)

	count, err := session.Value[int](s, "count")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = session.Value[int](s, "name")
	assert.ErrorIs(t, err, session.ErrTypeMismatch)

	_, err = session.Value[string](s, "missing")
	assert.ErrorIs(t, err, session.ErrNotFound)

	_, err = session.Value[string](nil, "name")
	assert.ErrorIs(t, err, session.ErrNotFound)

	assert.Equal(t, "fallback", session.ValueOr(s, "missing", "fallback"))
	assert.Equal(t, 7, session.ValueOr(s, "name", 7))
}
