package cli

import (
	"Recipe-Share/domain"
	"errors"
	"fmt"
	"gopkg.in/yaml.v2"
	"os"
	"path/filepath"
)

type Config struct {
	ServerURL      string `yaml:"SERVER_URL"`
	TimeoutSeconds int    `yaml:"TIMEOUT_SECONDS"`
	PageSize       int    `yaml:"PAGE_SIZE"`
	// FanOut bounds concurrent favourite lookups per page, 0 is unbounded.
	FanOut    int    `yaml:"FAN_OUT"`
	StatePath string `yaml:"STATE_PATH"`
}

func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "client.yaml"
	}
	return filepath.Join(dir, "recipeshare", "client.yaml")
}

// LoadConfig reads the client configuration. A missing file yields the
// defaults; RECIPES_SERVER_URL overrides the server.
func LoadConfig(path string) (*Config, error) {
	var conf Config
	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("cli: reading config: %w", err)
	default:
		if err := yaml.Unmarshal(file, &conf); err != nil {
			return nil, fmt.Errorf("cli: parsing config: %w", err)
		}
	}

	if v := os.Getenv("RECIPES_SERVER_URL"); v != "" {
		conf.ServerURL = v
	}
	if conf.ServerURL == "" {
		conf.ServerURL = "http://localhost:8080"
	}
	if conf.TimeoutSeconds <= 0 {
		conf.TimeoutSeconds = 15
	}
	if conf.PageSize <= 0 || conf.PageSize > domain.MaxPageSize {
		conf.PageSize = domain.DefaultPageSize
	}
	if conf.StatePath == "" {
		conf.StatePath = filepath.Join(filepath.Dir(path), "state.db")
	}
	return &conf, nil
}
