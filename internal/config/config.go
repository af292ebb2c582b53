package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// StorageConfig selects and configures the project store backend.
type StorageConfig struct {
	Type   string       `json:"type" mapstructure:"type"` // memory | sqlite
	Sqlite SqliteConfig `json:"sqlite" mapstructure:"sqlite"`
}

// SqliteConfig holds settings for the SQLite-backed project store.
type SqliteConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// ExportConfig holds settings applied when writing .xosc files.
type ExportConfig struct {
	OutputDir   string `json:"outputDir" mapstructure:"outputDir"`
	Author      string `json:"author" mapstructure:"author"`
	Description string `json:"description" mapstructure:"description"`
}

// OtelConfig holds metrics settings.
type OtelConfig struct {
	Enabled     bool   `json:"enabled" mapstructure:"enabled"`
	ServiceName string `json:"serviceName" mapstructure:"serviceName"`
}

// Load reads configuration from a JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./logs")

	viper.SetDefault("roadNetwork", "Town01")

	viper.SetDefault("export.outputDir", "./scenarios")
	viper.SetDefault("export.author", "OpenSCENARIO Editor")
	viper.SetDefault("export.description", "CARLA:OpenSCENARIO Generator")

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.sqlite.path", "./project.db")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "xosc-editor")

	viper.SetConfigName("xosc_editor.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// Storage returns the storage section as a typed struct.
func Storage() (StorageConfig, error) {
	var cfg StorageConfig
	if err := viper.UnmarshalKey("storage", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling storage config: %w", err)
	}
	return cfg, nil
}

// Export returns the export section as a typed struct.
func Export() (ExportConfig, error) {
	var cfg ExportConfig
	if err := viper.UnmarshalKey("export", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling export config: %w", err)
	}
	return cfg, nil
}

// Otel returns the otel section as a typed struct.
func Otel() (OtelConfig, error) {
	var cfg OtelConfig
	if err := viper.UnmarshalKey("otel", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling otel config: %w", err)
	}
	return cfg, nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
