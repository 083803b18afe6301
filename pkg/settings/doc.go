// Package settings loads application settings and supplies the add-on's
// default values.
//
// Settings come from an optional YAML file and from environment variables
// with the LIZARDUI_ prefix. Keys are case-insensitive; nested keys use dots
// in code and underscores in the environment:
//
//	s, err := settings.Load(settings.WithFile("lizardui.yaml"), settings.WithDefaults())
//	if s.IsSet("STATIC_URL") { ... }
//	apps := s.Strings("INSTALLED_APPS")
//
// [InstalledApps], [StaticfilesFinders] and [Example] are the defaults that
// WithDefaults applies and that the settings checker quotes in its messages.
package settings
