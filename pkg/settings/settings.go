package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultEnvPrefix is the environment variable prefix used by Load.
const DefaultEnvPrefix = "LIZARDUI"

// ErrRead is returned when an explicitly requested settings file cannot be read.
var ErrRead = errors.New("settings: read file")

// Settings is a key-presence queryable settings object.
type Settings struct {
	v *viper.Viper
}

type loadConfig struct {
	file      string
	envPrefix string
	defaults  bool
}

// Option configures Load.
type Option func(*loadConfig)

// WithFile reads settings from path. The format follows the extension.
func WithFile(path string) Option {
	return func(c *loadConfig) {
		c.file = path
	}
}

// WithEnvPrefix changes the environment prefix. An empty prefix disables
// environment lookup.
func WithEnvPrefix(prefix string) Option {
	return func(c *loadConfig) {
		c.envPrefix = prefix
	}
}

// WithDefaults applies Defaults for every key the file and environment leave unset.
func WithDefaults() Option {
	return func(c *loadConfig) {
		c.defaults = true
	}
}

// Load builds Settings from the configured sources.
func Load(opts ...Option) (*Settings, error) {
	cfg := &loadConfig{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(cfg)
	}

	v := viper.New()
	if cfg.defaults {
		for k, val := range Defaults() {
			v.SetDefault(k, val)
		}
	}
	if cfg.envPrefix != "" {
		v.SetEnvPrefix(cfg.envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}
	if cfg.file != "" {
		v.SetConfigFile(cfg.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrRead, cfg.file, err)
		}
	}

	return &Settings{v: v}, nil
}

// FromMap builds Settings from a map without touching files or the environment.
func FromMap(m map[string]any) *Settings {
	v := viper.New()
	for k, val := range m {
		v.Set(k, val)
	}
	return &Settings{v: v}
}

// IsSet reports whether key has a value from any source.
func (s *Settings) IsSet(key string) bool {
	return s.v.IsSet(key)
}

// Get returns the raw value for key, or nil.
func (s *Settings) Get(key string) any {
	return s.v.Get(key)
}

// String returns key as a string.
func (s *Settings) String(key string) string {
	return s.v.GetString(key)
}

// Strings returns key as a string list. A whitespace-separated environment
// value is split into fields.
func (s *Settings) Strings(key string) []string {
	return s.v.GetStringSlice(key)
}

// All returns every setting as a nested map with lower-cased keys.
func (s *Settings) All() map[string]any {
	return s.v.AllSettings()
}

// UnmarshalKey decodes the section under key into v using its mapstructure tags.
func (s *Settings) UnmarshalKey(key string, v any) error {
	return s.v.UnmarshalKey(key, v)
}

// Bool returns key as a bool.
func (s *Settings) Bool(key string) bool {
	return s.v.GetBool(key)
}
