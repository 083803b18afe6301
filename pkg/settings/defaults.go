package settings

import (
	"maps"
	"slices"
)

// InstalledApps is the default INSTALLED_APPS list.
var InstalledApps = []string{
	"compressor",
	"staticfiles",
	"django_extensions",
	"django_nose",
	"django.contrib.admin",
	"django.contrib.auth",
	"django.contrib.contenttypes",
	"django.contrib.sessions",
	"django.contrib.sites",
}

// StaticfilesFinders is the default STATICFILES_FINDERS list. Order matters:
// the file-system finder runs first and the legacy /media finder last.
var StaticfilesFinders = []string{
	"staticfiles.finders.FileSystemFinder",
	"staticfiles.finders.AppDirectoriesFinder",
	"compressor.finders.CompressorFinder",
	"staticfiles.finders.LegacyAppDirectoriesFinder",
}

var examples = map[string]any{
	"MEDIA_URL":          "/media/",
	"STATIC_URL":         "/static_media/",
	"ADMIN_MEDIA_PREFIX": "/static_media/admin/",
	"MEDIA_ROOT":         "var/media",
	"STATIC_ROOT":        "var/static",
	"LOGGING": map[string]any{
		"version":                  1,
		"disable_existing_loggers": true,
		"handlers": map[string]any{
			"console": map[string]any{"level": "DEBUG", "class": "logging.StreamHandler"},
		},
		"loggers": map[string]any{
			"": map[string]any{"handlers": []string{"console"}, "level": "DEBUG", "propagate": true},
		},
	},
	"STATICFILES_FINDERS": StaticfilesFinders,
}

// Example returns an example value for a required setting, or nil.
func Example(name string) any {
	v := examples[name]
	if s, ok := v.([]string); ok {
		return slices.Clone(s)
	}
	return v
}

// Required lists the settings the add-on needs, in check order.
func Required() []string {
	return []string{
		"MEDIA_URL",
		"STATIC_URL",
		"ADMIN_MEDIA_PREFIX",
		"MEDIA_ROOT",
		"STATIC_ROOT",
		"LOGGING",
		"STATICFILES_FINDERS",
	}
}

// Defaults returns the runtime defaults applied by WithDefaults.
func Defaults() map[string]any {
	d := maps.Clone(examples)
	d["INSTALLED_APPS"] = slices.Clone(InstalledApps)
	d["STATICFILES_FINDERS"] = slices.Clone(StaticfilesFinders)
	return d
}
