package config

type Config struct {
	Clinic  ClinicConfig  `mapstructure:"clinic"`
	CLI     CLIConfig     `mapstructure:"cli"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ClinicConfig struct {
	// Name is the banner shown on top of the interactive menu.
	Name string `mapstructure:"name"`
}

type CLIConfig struct {
	// Tables toggles tabular rendering for the list views; when off
	// the lists fall back to one entity per line.
	Tables bool `mapstructure:"tables"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stderr bool          `mapstructure:"stderr"`
	File   FileLogConfig `mapstructure:"file"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/clinica.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

func (c *Config) Validate() error {
	return nil
}
