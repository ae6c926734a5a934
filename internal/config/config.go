package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type StorageConfig struct {
	// Path of the app-storage snapshot file.
	Path string `mapstructure:"path"`
	// FlushDebounce is how long the store must be quiet before a snapshot
	// is written.
	FlushDebounce time.Duration `mapstructure:"flush_debounce"`
}

type SimulationConfig struct {
	// UploadDelay is the bounded delay applied to simulated uploads.
	UploadDelay time.Duration `mapstructure:"upload_delay"`
	// DeliveryDelay is the per-step delay of the simulated chat delivery
	// progression.
	DeliveryDelay time.Duration `mapstructure:"delivery_delay"`
}

type Config struct {
	ServerPort     string           `mapstructure:"server_port"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	Storage        StorageConfig    `mapstructure:"storage"`
	Simulation     SimulationConfig `mapstructure:"simulation"`
}

// Load reads the configuration from a YAML file and returns a Config
// instance. A missing file is fine; every field has a fallback default.
func Load() *Config {
	v := viper.New()

	// Look for config in the current directory and ./config
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("Error reading config file: %v", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Fatalf("Error unmarshalling config: %v", err)
	}

	// Fallback defaults
	if config.ServerPort == "" {
		config.ServerPort = "8080"
	}
	if len(config.AllowedOrigins) == 0 {
		config.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if config.Storage.Path == "" {
		config.Storage.Path = "app-storage.json"
	}
	if config.Storage.FlushDebounce <= 0 {
		config.Storage.FlushDebounce = 250 * time.Millisecond
	}
	if config.Simulation.UploadDelay <= 0 {
		config.Simulation.UploadDelay = 2 * time.Second
	}
	if config.Simulation.DeliveryDelay <= 0 {
		config.Simulation.DeliveryDelay = time.Second
	}

	return &config
}
