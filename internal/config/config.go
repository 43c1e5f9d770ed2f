package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const configPathEnv = "SENTINEWS_CONFIG"

// Config holds pipeline settings. Credentials and connection strings
// stay in the environment; the yaml file only carries tunables.
type Config struct {
	Topics          []string `yaml:"topics"`
	Interval        string   `yaml:"interval"`
	DigestSize      int      `yaml:"digestSize"`
	ProviderTimeout string   `yaml:"providerTimeout"`
	DefaultTopic    string   `yaml:"defaultTopic"`
}

func defaults() *Config {
	return &Config{
		Topics:          []string{"technology", "finance", "business", "health", "sports", "education"},
		Interval:        "1h",
		DigestSize:      5,
		ProviderTimeout: "30s",
		DefaultTopic:    "business",
	}
}

// Load returns defaults, overlaid with the yaml file named by
// SENTINEWS_CONFIG when set.
func Load() (*Config, error) {
	cfg := defaults()

	path := os.Getenv(configPathEnv)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if len(cfg.Topics) == 0 {
		return nil, fmt.Errorf("config %s: topics must not be empty", path)
	}

	if _, err := time.ParseDuration(cfg.Interval); err != nil {
		return nil, fmt.Errorf("config %s: invalid interval: %w", path, err)
	}

	if _, err := time.ParseDuration(cfg.ProviderTimeout); err != nil {
		return nil, fmt.Errorf("config %s: invalid providerTimeout: %w", path, err)
	}

	if cfg.DigestSize < 1 {
		cfg.DigestSize = defaults().DigestSize
	}

	return cfg, nil
}

func (c *Config) IntervalDuration() time.Duration {
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return time.Hour
	}
	return d
}

func (c *Config) ProviderTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.ProviderTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}
