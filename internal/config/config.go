// Package config provides configuration types and defaults for calc.
package config

import "time"

// Config holds all configuration for calc.
type Config struct {
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	Storage     StorageConfig     `yaml:"storage" mapstructure:"storage"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
	Audit       AuditConfig       `yaml:"audit" mapstructure:"audit"`
	TUI         TUIConfig         `yaml:"tui" mapstructure:"tui"`
	Serve       ServeConfig       `yaml:"serve" mapstructure:"serve"`
}

// PathsConfig holds file paths for the session blob, audit log, and debug log.
type PathsConfig struct {
	State string `yaml:"state" mapstructure:"state"`
	Audit string `yaml:"audit" mapstructure:"audit"`
	Log   string `yaml:"log" mapstructure:"log"`
}

// StorageConfig selects and configures the storage backend behind the
// session blob.
type StorageConfig struct {
	// Backend is "file" (default, atomic temp-file-and-rename) or "sqlite".
	Backend string `yaml:"backend" mapstructure:"backend"`
}

// LogRotationConfig holds settings for the TUI's debug log (lumberjack-based
// automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// AuditConfig controls the JSONL audit trail of interpreter events.
type AuditConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// TUIConfig controls the optional read-only dashboard.
type TUIConfig struct {
	Enabled      bool          `yaml:"enabled" mapstructure:"enabled"`
	RefreshEvery time.Duration `yaml:"refresh_every" mapstructure:"refresh_every"`
}

// ServeConfig controls the read-only HTTP monitoring surface.
type ServeConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			State: ".calc/state.bin",
			Audit: ".calc/audit.jsonl",
			Log:   ".calc/calc.log",
		},
		Storage: StorageConfig{
			Backend: "file",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Audit: AuditConfig{
			Enabled: true,
		},
		TUI: TUIConfig{
			Enabled:      false,
			RefreshEvery: 200 * time.Millisecond,
		},
		Serve: ServeConfig{
			Addr: "127.0.0.1:4420",
		},
	}
}
