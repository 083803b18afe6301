package db

import "time"

// Config holds PostgreSQL pool parameters. Field tags match the "database"
// section of the settings file.
type Config struct {
	URL               string        `mapstructure:"url"`
	MigrationsTable   string        `mapstructure:"migrations_table"`
	HealthCheckPeriod time.Duration `mapstructure:"health_check_period"`
	MaxConnIdleTime   time.Duration `mapstructure:"max_conn_idle_time"`
	MaxConnLifetime   time.Duration `mapstructure:"max_conn_lifetime"`
	RetryAttempts     int           `mapstructure:"retry_attempts"`
	RetryInterval     time.Duration `mapstructure:"retry_interval"`
	MaxConns          int32         `mapstructure:"max_conns"`
	MinConns          int32         `mapstructure:"min_conns"`
}

// withDefaults fills zero fields.
func (c Config) withDefaults() Config {
	if c.MigrationsTable == "" {
		c.MigrationsTable = "lizardui_migrations"
	}
	if c.HealthCheckPeriod == 0 {
		c.HealthCheckPeriod = time.Minute
	}
	if c.MaxConnIdleTime == 0 {
		c.MaxConnIdleTime = 10 * time.Minute
	}
	if c.MaxConnLifetime == 0 {
		c.MaxConnLifetime = 30 * time.Minute
	}
	if c.RetryAttempts == 0 {
		c.RetryAttempts = 3
	}
	if c.RetryInterval == 0 {
		c.RetryInterval = 2 * time.Second
	}
	if c.MaxConns == 0 {
		c.MaxConns = 10
	}
	if c.MinConns == 0 {
		c.MinConns = 1
	}
	return c
}
