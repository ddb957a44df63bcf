package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.RequestLimit < 1 {
		return errors.New("api.request_limit must be >= 1")
	}
	if c.API.RequestWindow <= 0 {
		return errors.New("api.request_window must be positive")
	}
	if c.API.RetryBackoff <= 0 {
		return errors.New("api.retry_backoff must be positive")
	}

	if c.Tool.DefaultFloorCount < 1 {
		return errors.New("tool.default_floor_count must be >= 1")
	}
	if c.Tool.VerifyConcurrency < 1 {
		return errors.New("tool.verify_concurrency must be >= 1")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	return nil
}
