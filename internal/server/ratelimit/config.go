package ratelimit

import "time"

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTimeout     time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// NewConfig builds a Config with the default endpoint table.
func NewConfig(enabled bool, defaultLimit int, defaultWindow time.Duration, whitelist map[string]bool) *Config {
	if whitelist == nil {
		whitelist = make(map[string]bool)
	}
	return &Config{
		Enabled:         enabled,
		DefaultLimit:    defaultLimit,
		DefaultWindow:   defaultWindow,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Whitelist:       whitelist,
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// LLM-backed, strictest
		{Path: "/rephrase/batch", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
		{Path: "/rephrase", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Writes
		{Path: "/settings", Method: "PUT", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/settings/", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/history", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/history/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},

		// Pure template generation
		{Path: "/share", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
	}
}
