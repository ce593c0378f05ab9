package config

import (
	"fmt"
	"os"

	"github.com/amaumene/envinit/pkg/dotenv"
	log "github.com/sirupsen/logrus"
)

const (
	defaultFile     = dotenv.DefaultFile
	defaultPolicy   = "override"
	defaultLogLevel = "info"
)

// Config holds the envload command configuration
type Config struct {
	File     string // dotenv file to load
	Policy   string // override or skip
	LogLevel string
	Optional bool // a missing file is not an error
	Print    bool // print the file's assignments instead of applying them
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		File:     getEnvOrDefault("DOTENV_FILE", defaultFile),
		Policy:   getEnvOrDefault("DOTENV_POLICY", defaultPolicy),
		LogLevel: getEnvOrDefault("LOG_LEVEL", defaultLogLevel),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("dotenv file is required")
	}
	if _, err := dotenv.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// GetPolicy returns the parsed assignment policy
func (c *Config) GetPolicy() dotenv.Policy {
	p, err := dotenv.ParsePolicy(c.Policy)
	if err != nil {
		return dotenv.Override
	}
	return p
}

// GetLogLevel returns the parsed log level, info when unparseable
func (c *Config) GetLogLevel() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
