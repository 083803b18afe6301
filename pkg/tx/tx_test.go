package tx_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui/pkg/tx"
)

func project(t *testing.T) (root, nested string) {
	t.Helper()
	root = t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".tx"), 0o755))
	nested = filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	return root, nested
}

func TestFindRoot(t *testing.T) {
	t.Parallel()

	root, nested := project(t)

	got, err := tx.FindRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = tx.FindRoot(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRootWithoutProject(t *testing.T) {
	t.Parallel()

	_, err := tx.FindRoot(t.TempDir())
	assert.ErrorIs(t, err, tx.ErrNoProject)
}

func TestRunRejectsCommands(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	assert.ErrorIs(t, tx.Run(ctx, nil, tx.Options{}), tx.ErrNoCommand)

	err := tx.Run(ctx, []string{"delete"}, tx.Options{})
	assert.ErrorIs(t, err, tx.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "delete")
}

func TestRunOutsideProject(t *testing.T) {
	t.Parallel()

	err := tx.Run(context.Background(), []string{"status"}, tx.Options{Dir: t.TempDir()})
	assert.ErrorIs(t, err, tx.ErrNoProject)
}

func fakeClient(t *testing.T, script string) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	bin := filepath.Join(t.TempDir(), "tx")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return bin
}

func TestRunPassesArgsInRoot(t *testing.T) {
	root, nested := project(t)
	bin := fakeClient(t, `echo "$(pwd) $@"`)

	var out bytes.Buffer
	err := tx.Run(context.Background(), []string{"pull", "-a"}, tx.Options{
		Binary: bin,
		Dir:    nested,
		Stdout: &out,
	})
	require.NoError(t, err)

	realRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Contains(t, []string{root + " pull -a\n", realRoot + " pull -a\n"}, out.String())
}

func TestRunReportsLastErrorLine(t *testing.T) {
	_, nested := project(t)
	bin := fakeClient(t, "echo 'Traceback' >&2\necho 'Error: no resources' >&2\nexit 2")

	err := tx.Run(context.Background(), []string{"push"}, tx.Options{Binary: bin, Dir: nested})
	require.ErrorIs(t, err, tx.ErrCommandFailed)
	assert.Contains(t, err.Error(), "Error: no resources")
}
