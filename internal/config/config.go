// Package config loads and validates application configuration from
// defaults, an optional config file, and environment variables, in
// ascending order of precedence.
package config

// Config holds all application configuration, organized into logical
// groups.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the database connection settings. The URL is a
// standard Postgres connection string; the pool behind it is configured at
// startup and shared for the life of the process.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}
