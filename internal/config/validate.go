package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Telegram.Token) == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if c.Telegram.PollTimeout < 0 {
		return fmt.Errorf("telegram.poll_timeout must be >= 0 (got %d)", c.Telegram.PollTimeout)
	}
	if c.Telegram.Workers < 1 {
		return fmt.Errorf("telegram.workers must be >= 1 (got %d)", c.Telegram.Workers)
	}
	if c.Telegram.HandlerTimeout <= 0 {
		return fmt.Errorf("telegram.handler_timeout must be > 0 (got %v)", c.Telegram.HandlerTimeout)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	if err := c.Subscription.validate(); err != nil {
		return fmt.Errorf("subscription: %w", err)
	}

	return nil
}

// Validate checks the database section only.
func (c *ToolConfig) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (l *LookupConfig) validate() error {
	u, err := url.Parse(l.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be an http(s) URL (got %q)", l.BaseURL)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	return nil
}

func (s *SubscriptionConfig) validate() error {
	if s.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %v)", s.Interval)
	}
	if s.TickTimeout <= 0 {
		return fmt.Errorf("tick_timeout must be > 0 (got %v)", s.TickTimeout)
	}
	return nil
}
