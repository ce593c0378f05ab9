// Package config provides configuration management for the envload command.
//
// Configuration is loaded from environment variables with sensible defaults:
//   - DOTENV_FILE: file to load (default .env)
//   - DOTENV_POLICY: override or skip (default override)
//   - LOG_LEVEL: logrus level name (default info)
//
// Command-line flags take precedence over these values.
package config
