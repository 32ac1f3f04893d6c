package auth

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds token-issuing settings loaded from the auth config file. The
// signing secret may be overridden by the JWT_SECRET environment variable so
// deployments keep it out of the file.
type Config struct {
	Issuer          string `yaml:"issuer"`
	Secret          string `yaml:"secret"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
}

// LoadConfig reads the auth configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse auth config: %w", err)
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.Secret = secret
	}

	if config.Issuer == "" {
		config.Issuer = "temple-outreach-backend"
	}
	if config.TokenTTLMinutes <= 0 {
		config.TokenTTLMinutes = 60 * 12
	}
	if config.Secret == "" {
		return nil, fmt.Errorf("auth config: signing secret is required")
	}

	return &config, nil
}

// TokenTTL returns the configured token lifetime
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}
