// Package config loads service settings from the environment and an optional file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all runtime settings. Environment variables override values
// from the config file, which override defaults.
type Config struct {
	Port               int           `mapstructure:"PORT"`
	GeminiAPIKey       string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel        string        `mapstructure:"GEMINI_MODEL"`
	DatabaseURL        string        `mapstructure:"DATABASE_URL"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
	DailyResetSchedule string        `mapstructure:"DAILY_RESET_SCHEDULE"`
	RephraseCacheTTL   time.Duration `mapstructure:"REPHRASE_CACHE_TTL"`
	RateLimitEnabled   bool          `mapstructure:"RATE_LIMIT_ENABLED"`
	RateLimitDefault   int           `mapstructure:"RATE_LIMIT_DEFAULT_LIMIT"`
	RateLimitWindow    time.Duration `mapstructure:"RATE_LIMIT_DEFAULT_WINDOW"`
	RateLimitWhitelist string        `mapstructure:"RATE_LIMIT_WHITELIST"`
}

var defaults = map[string]any{
	"PORT":                      8080,
	"GEMINI_API_KEY":            "",
	"GEMINI_MODEL":              "",
	"DATABASE_URL":              "",
	"LOG_LEVEL":                 "info",
	"LOG_FORMAT":                "json",
	"DAILY_RESET_SCHEDULE":      "0 0 * * *",
	"REPHRASE_CACHE_TTL":        "30m",
	"RATE_LIMIT_ENABLED":        true,
	"RATE_LIMIT_DEFAULT_LIMIT":  300,
	"RATE_LIMIT_DEFAULT_WINDOW": "1m",
	"RATE_LIMIT_WHITELIST":      "",
}

// Load reads configuration. path may be empty, in which case only defaults
// and the environment are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges. Required credentials are checked by the
// commands that need them.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: PORT must be between 1 and 65535, got %d", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: invalid LOG_LEVEL %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("config error: LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.RephraseCacheTTL < 0 {
		return fmt.Errorf("config error: REPHRASE_CACHE_TTL must be non-negative")
	}
	if c.RateLimitEnabled {
		if c.RateLimitDefault <= 0 {
			return fmt.Errorf("config error: RATE_LIMIT_DEFAULT_LIMIT must be positive")
		}
		if c.RateLimitWindow <= 0 {
			return fmt.Errorf("config error: RATE_LIMIT_DEFAULT_WINDOW must be positive")
		}
	}
	return nil
}

// RequireAPIKey returns an error when no Gemini key is configured.
func (c *Config) RequireAPIKey() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	return nil
}

// Whitelist returns the rate-limit whitelist as a set of client IPs.
func (c *Config) Whitelist() map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(c.RateLimitWhitelist, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
