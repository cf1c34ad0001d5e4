// Package config resolves photoboard settings from command-line flags,
// environment variables, a .env file and defaults, in that order of precedence.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Config holds the client configuration.
type Config struct {
	API       APIConfig
	Logger    LoggerConfig
	Telemetry TelemetryConfig
}

// APIConfig holds backend settings.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level  string
	Format string
	File   string
}

// TelemetryConfig holds OTLP trace export settings. An empty Endpoint
// disables export.
type TelemetryConfig struct {
	Endpoint    string
	ServiceName string
}

const (
	flagAPIURL    = "api-url"
	flagTimeout   = "timeout"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagLogFile   = "log-file"
	flagEnvFile   = "env-file"
)

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagAPIURL, "", "Backend API base URL (default http://localhost:3000/api)")
	fs.Duration(flagTimeout, 0, "Per-request timeout (default 15s)")
	fs.String(flagLogLevel, "", "Log level: debug, info, warn, error (default info)")
	fs.String(flagLogFormat, "", "Log format: json or pretty (default json)")
	fs.String(flagLogFile, "", "Log file path (default ~/.local/state/photoboard/photoboard.log)")
	fs.String(flagEnvFile, ".env", "Path to .env file")
}

// Load builds a Config from fs, which must have been set up with
// RegisterFlags and parsed. Only flags the user actually set take
// precedence over the environment.
func Load(fs *pflag.FlagSet) (*Config, error) {
	envFile, _ := fs.GetString(flagEnvFile)
	// A missing .env file is fine.
	_ = loadEnvFile(envFile)

	cfg := &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(value(fs, flagAPIURL, "PHOTOBOARD_API_URL", "http://localhost:3000/api"), "/"),
		},
		Logger: LoggerConfig{
			Level:  value(fs, flagLogLevel, "LOG_LEVEL", "info"),
			Format: value(fs, flagLogFormat, "LOG_FORMAT", "json"),
			File:   value(fs, flagLogFile, "PHOTOBOARD_LOG_FILE", ""),
		},
		Telemetry: TelemetryConfig{
			Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName: envOr("OTEL_SERVICE_NAME", "photoboard"),
		},
	}

	timeoutStr := value(fs, flagTimeout, "PHOTOBOARD_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", timeoutStr, err)
	}
	cfg.API.Timeout = timeout

	if cfg.Logger.File == "" {
		cfg.Logger.File = defaultLogFile()
	} else if cfg.Logger.File, err = expandPath(cfg.Logger.File); err != nil {
		return nil, fmt.Errorf("invalid log file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API URL: %q (must be an http or https URL)", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "pretty" {
		return fmt.Errorf("invalid log format: %s (must be json or pretty)", c.Logger.Format)
	}
	return nil
}

// value returns the flag value if the flag was set, then the env var, then def.
func value(fs *pflag.FlagSet, flagName, envKey, def string) string {
	if f := fs.Lookup(flagName); f != nil && f.Changed {
		return f.Value.String()
	}
	return envOr(envKey, def)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultLogFile() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "photoboard", "photoboard.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "photoboard", "photoboard.log")
}

// expandPath expands a leading ~ and makes the path absolute.
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = abs
	}
	return filepath.Clean(path), nil
}

// loadEnvFile loads KEY=value lines into the environment without
// overriding variables that are already set. Lines starting with # are
// comments; values may be wrapped in single or double quotes.
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- path comes from the user
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		val = strings.TrimSpace(val)
		if len(val) >= 2 && (val[0] == '"' || val[0] == '\'') && val[len(val)-1] == val[0] {
			val = val[1 : len(val)-1]
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, val); err != nil {
				return fmt.Errorf("set %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}
