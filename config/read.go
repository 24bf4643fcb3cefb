package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)

	setDefaults()

	// Allow env vars to override config values.
	// e.g. CLINICA_LOGGING_LEVEL overrides logging.level
	viper.SetEnvPrefix("CLINICA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The registry is fully in-memory, so running without a config
	// file is a supported mode; defaults and env vars carry it.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("clinic.name", "Sistema de Gestión de Clínica Médica")
	viper.SetDefault("cli.tables", true)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.output.stderr", false)
	viper.SetDefault("logging.output.file.enabled", true)
	viper.SetDefault("logging.output.file.path", "logs/clinica.log")
	viper.SetDefault("logging.output.file.max_size_mb", 10)
	viper.SetDefault("logging.output.file.max_backups", 3)
	viper.SetDefault("logging.output.file.max_age_days", 30)
}
