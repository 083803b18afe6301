package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/lizardui/pkg/settings"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSettingsDefaults(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "settings", "defaults")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	finders, ok := got["STATICFILES_FINDERS"].([]any)
	require.True(t, ok)
	require.Len(t, finders, len(settings.StaticfilesFinders))
	for i, f := range settings.StaticfilesFinders {
		assert.Equal(t, f, finders[i])
	}
	assert.Equal(t, "/static_media/", got["STATIC_URL"])
	assert.Len(t, got["INSTALLED_APPS"], len(settings.InstalledApps))
}

func TestConfigcheck(t *testing.T) {
	t.Parallel()

	empty := writeSettings(t, "{}\n")

	_, logs, err := execute(t, "configcheck", "--settings", empty)
	require.NoError(t, err, "problems are only logged without --strict")
	assert.Contains(t, logs, "setting is missing")
	assert.Contains(t, logs, "setting=MEDIA_URL")

	_, _, err = execute(t, "configcheck", "--strict", "--settings", empty)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, err.Error(), "15 configuration errors")
}

func TestConfigcheckCompliant(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for _, name := range settings.Required() {
		b.WriteString(name + ": set\n")
	}
	b.WriteString("INSTALLED_APPS:\n")
	for _, app := range []string{
		"lizard_ui", "compressor", "staticfiles", "django.contrib.admin", "django.contrib.auth",
		"django.contrib.contenttypes", "django.contrib.sessions", "django.contrib.sites",
	} {
		b.WriteString("  - " + app + "\n")
	}

	_, logs, err := execute(t, "configcheck", "--strict", "--settings", writeSettings(t, b.String()))
	require.NoError(t, err)
	assert.NotContains(t, logs, "level=ERROR")
}

func TestTxUnknownCommand(t *testing.T) {
	t.Parallel()

	_, logs, err := execute(t, "tx", "delete")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, logs, "tx: unknown command: delete")
}

func TestUserCreateNeedsDatabase(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "user", "create", "-u", "admin", "-p", "secret", "--settings", writeSettings(t, "{}\n"))
	assert.ErrorIs(t, err, errNoDatabase)
}

func TestLastLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Error: no resources", lastLine("tx: command failed\nexit status 2\nError: no resources\n"))
	assert.Equal(t, "single", lastLine("single"))
}
