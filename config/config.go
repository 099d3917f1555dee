// Package config holds the mwn configuration, loaded from a TOML file,
// MWN_-prefixed environment variables, and built-in defaults, in that
// order of precedence.
package config

// Config represents the mwn configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Language string         `mapstructure:"language"` // default wordnet language
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig configures the SQLite backing store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig configures log output.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}
