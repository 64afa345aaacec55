package config

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config contains runtime configuration for the service.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Data   DataConfig   `mapstructure:"data"`
	Auth   AuthConfig   `mapstructure:"auth"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DataConfig points at the JSON files the stores flush to. The events
// file lives on its own; engagement and ticket documents share Dir.
type DataConfig struct {
	EventsFile string `mapstructure:"events_file"`
	Dir        string `mapstructure:"dir"`
}

type AuthConfig struct {
	Credentials map[string]string `mapstructure:"credentials"`
}

// EngagementFile is the path of the per-event engagement document.
func (d DataConfig) EngagementFile() string {
	return filepath.Join(d.Dir, "engagement_data.json")
}

// TicketsFile is the path of the per-event ticket-sales document.
func (d DataConfig) TicketsFile() string {
	return filepath.Join(d.Dir, "tickets_data.json")
}

// Load reads configuration from an optional config.yaml plus
// APP_-prefixed environment overrides, falling back to defaults that
// run out-of-the-box.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/eventpro")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("data.events_file", "events_data.json")
	viper.SetDefault("data.dir", "data")
	viper.SetDefault("auth.credentials", map[string]string{
		"admin@eventpro.com": "admin123",
		"admin@gmail.com":    "admin",
		"test@test.com":      "test123",
		"demo@demo.com":      "demo",
	})

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: could not read config file: %v", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
