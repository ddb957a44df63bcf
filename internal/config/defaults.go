package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL           = "https://api.warframe.market/v1"
	DefaultAPITimeout        = 30 * time.Second
	DefaultRequestLimit      = 3
	DefaultRequestWindow     = 1 * time.Second
	DefaultRetryBackoff      = 1 * time.Second
	DefaultFloorCount        = 5
	DefaultVerifyConcurrency = 3
	DefaultServerPort        = 8080
	DefaultLogLevel          = "info"
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.RequestLimit == 0 {
		c.API.RequestLimit = DefaultRequestLimit
	}
	if c.API.RequestWindow == 0 {
		c.API.RequestWindow = DefaultRequestWindow
	}
	if c.API.RetryBackoff == 0 {
		c.API.RetryBackoff = DefaultRetryBackoff
	}

	// Tool defaults
	if c.Tool.DefaultFloorCount == 0 {
		c.Tool.DefaultFloorCount = DefaultFloorCount
	}
	if c.Tool.VerifyConcurrency == 0 {
		c.Tool.VerifyConcurrency = DefaultVerifyConcurrency
	}

	// Server defaults
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerPort
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
