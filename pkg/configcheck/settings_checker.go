package configcheck

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/lizardui/pkg/settings"
)

// Settings is the part of a settings object the built-in checker reads.
type Settings interface {
	IsSet(key string) bool
	Strings(key string) []string
}

// RequiredApps lists the entries that must appear in INSTALLED_APPS.
var RequiredApps = []string{
	"lizard_ui",
	"compressor",
	"staticfiles",
	"django.contrib.admin",
	"django.contrib.auth",
	"django.contrib.contenttypes",
	"django.contrib.sessions",
	"django.contrib.sites",
}

// SettingsChecker returns a checker that logs one error for every required
// setting that is not set and one for every required app missing from
// INSTALLED_APPS.
func SettingsChecker(s Settings, log *slog.Logger) CheckerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func() {
		for _, name := range settings.Required() {
			if !s.IsSet(name) {
				log.Error("setting is missing",
					slog.String("setting", name),
					slog.Any("example", settings.Example(name)),
				)
			}
		}

		installed := s.Strings("INSTALLED_APPS")
		for _, app := range RequiredApps {
			if !slices.Contains(installed, app) {
				log.Error("app is missing from INSTALLED_APPS", slog.String("app", app))
			}
		}
	}
}

// RegisterDefaults registers the built-in settings checker on r.
func RegisterDefaults(r *Registry, s Settings, log *slog.Logger) {
	r.Register(SettingsChecker(s, log))
}
