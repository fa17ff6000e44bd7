package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	instance *Config
	once     sync.Once
)

// Config holds the non-secret application settings read from config.yaml.
// Secrets (API key, database DSN, session secret) come from the environment.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Weather struct {
		BaseURL string `yaml:"base_url"`
		Units   string `yaml:"units"`
	} `yaml:"weather"`
}

func Load(configPath string) (*Config, error) {
	var err error
	once.Do(func() {
		instance = &Config{}

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file %s: %w", configPath, readErr)
			return
		}

		if parseErr := yaml.Unmarshal(data, instance); parseErr != nil {
			err = fmt.Errorf("failed to parse config: %w", parseErr)
			return
		}

		instance.applyDefaults()

		if validateErr := instance.validate(); validateErr != nil {
			err = validateErr
			return
		}
	})

	return instance, err
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Weather.BaseURL == "" {
		c.Weather.BaseURL = "https://api.openweathermap.org/data/2.5/forecast"
	}
	if c.Weather.Units == "" {
		c.Weather.Units = "metric"
	}
}

func (c *Config) validate() error {
	switch c.Weather.Units {
	case "metric", "imperial", "standard":
	default:
		return fmt.Errorf("weather.units must be one of metric, imperial, standard; got %q", c.Weather.Units)
	}
	return nil
}
