// Package config provides configuration management for the Alexander
// Directory tooling. Configuration can be loaded from YAML files and
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/prn-tf/alexander-directory/internal/pkg/crypto"
)

// Config represents the complete application configuration.
type Config struct {
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// AuthConfig holds credential derivation settings.
type AuthConfig struct {
	// SaltBytes is the number of random bytes in a freshly generated salt.
	SaltBytes int `mapstructure:"salt_bytes"`

	// AccessCodeLength is the length of a generated one-time access code.
	AccessCodeLength int `mapstructure:"access_code_length"`

	// Hasher selects the credential digest algorithm: "md5" (legacy record
	// compatible) or "argon2id" (memory hard).
	Hasher string `mapstructure:"hasher"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	// Enabled determines if metrics collection is active.
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from the specified file and environment variables.
// Environment variables take precedence over file values. They are prefixed
// with DIRECTORY_ and use _ as separator, e.g. DIRECTORY_AUTH_HASHER.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("DIRECTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/directory")
	}

	// Config file not found is acceptable - defaults and env vars suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("auth.salt_bytes", crypto.DefaultSaltBytes)
	v.SetDefault("auth.access_code_length", crypto.DefaultAccessCodeLength)
	v.SetDefault("auth.hasher", crypto.HasherMD5)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("metrics.enabled", false)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Auth.SaltBytes < 8 || c.Auth.SaltBytes > 64 {
		return fmt.Errorf("auth.salt_bytes must be between 8 and 64, got %d", c.Auth.SaltBytes)
	}
	if c.Auth.AccessCodeLength < 4 || c.Auth.AccessCodeLength > 32 {
		return fmt.Errorf("auth.access_code_length must be between 4 and 32, got %d", c.Auth.AccessCodeLength)
	}
	if _, err := crypto.NewHasher(c.Auth.Hasher); err != nil {
		return fmt.Errorf("auth.hasher: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}
