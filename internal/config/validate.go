package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	if c.RateLimit.Enabled && (c.RateLimit.WritesPerMinute <= 0 || c.RateLimit.VotesPerMinute <= 0) {
		return fmt.Errorf("rate_limit: per-minute limits must be > 0 when enabled")
	}

	if err := c.Newsroom.validate(); err != nil {
		return fmt.Errorf("newsroom: %w", err)
	}

	return nil
}

func (n *NewsroomConfig) validate() error {
	if n.ShareTokenBytes < 16 {
		return fmt.Errorf("share_token_bytes must be >= 16 (got %d)", n.ShareTokenBytes)
	}
	if n.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", n.DefaultPageSize)
	}
	if n.MaxPageSize < n.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", n.MaxPageSize, n.DefaultPageSize)
	}
	if strings.TrimSpace(n.MediaDir) == "" {
		return fmt.Errorf("media_dir is required")
	}
	return nil
}
