package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultEndpoint targets a playground backend on the local host.
const DefaultEndpoint = "http://localhost:8080/api/code"

// EnvEndpoint overrides the config file; a .env file is honored by main.
const EnvEndpoint = "CODERUN_ENDPOINT"

type Config struct {
	EndpointURL string `json:"endpoint_url"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config JSON: %w", err)
	}
	if c.EndpointURL == "" {
		return nil, fmt.Errorf("config has no endpoint_url")
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Resolve picks the endpoint URL: flag value, then environment, then the
// optional config file, then the default.
func Resolve(flagURL, path string) (*Config, error) {
	if flagURL != "" {
		return &Config{EndpointURL: flagURL}, nil
	}
	if env := os.Getenv(EnvEndpoint); env != "" {
		return &Config{EndpointURL: env}, nil
	}
	if path != "" {
		return Load(path)
	}
	return &Config{EndpointURL: DefaultEndpoint}, nil
}
