package configcheck_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lizardui/pkg/configcheck"
	"github.com/dmitrymomot/lizardui/pkg/logger"
	"github.com/dmitrymomot/lizardui/pkg/settings"
)

func compliant() map[string]any {
	m := settings.Defaults()
	m["INSTALLED_APPS"] = append([]string{"lizard_ui"}, settings.InstalledApps...)
	return m
}

func TestSettingsCheckerReportsEveryMissingItem(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := logger.New(logger.WithOutput(&buf))
	log, counter := logger.NewCounter(base)

	r := configcheck.New()
	configcheck.RegisterDefaults(r, settings.FromMap(nil), log)
	require.NotPanics(t, r.Run)

	assert.Equal(t, int64(15), counter.Errors())

	var missingSettings, missingApps []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, sonic.UnmarshalString(line, &rec))
		assert.Equal(t, "ERROR", rec["level"])
		if s, ok := rec["setting"].(string); ok {
			missingSettings = append(missingSettings, s)
			assert.NotNil(t, rec["example"], s)
		}
		if a, ok := rec["app"].(string); ok {
			missingApps = append(missingApps, a)
		}
	}
	assert.Equal(t, settings.Required(), missingSettings)
	assert.Equal(t, configcheck.RequiredApps, missingApps)
}

func TestSettingsCheckerCompliant(t *testing.T) {
	t.Parallel()

	log, counter := logger.NewCounter(logger.NewNope())
	configcheck.SettingsChecker(settings.FromMap(compliant()), log)()

	assert.Zero(t, counter.Errors())
	assert.Zero(t, counter.Count(slog.LevelWarn))
}

func TestSettingsCheckerPartial(t *testing.T) {
	t.Parallel()

	m := compliant()
	delete(m, "LOGGING")
	m["INSTALLED_APPS"] = settings.InstalledApps // lizard_ui absent

	log, counter := logger.NewCounter(logger.NewNope())
	configcheck.SettingsChecker(settings.FromMap(m), log)()

	assert.Equal(t, int64(2), counter.Errors())
}
