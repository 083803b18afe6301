package auth_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui/pkg/auth"
	"github.com/dmitrymomot/lizardui/pkg/db"
)

func TestPostgres(t *testing.T) {
	url := os.Getenv("LIZARDUI_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("LIZARDUI_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, db.Config{URL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool, auth.Migrations, "", nil))

	store := auth.NewPostgres(pool)
	username := "user-" + uuid.NewString()

	id, err := store.CreateUser(ctx, username, "secret", true)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM lizardui_users WHERE id = $1`, id)
	})

	_, err = store.CreateUser(ctx, username, "secret", true)
	assert.ErrorIs(t, err, auth.ErrUserExists)

	u, err := store.Authenticate(ctx, username, "secret")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.True(t, u.Active)

	_, err = store.Authenticate(ctx, username, "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
