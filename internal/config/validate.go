package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [0, 65535] (got %d)", c.Server.Port)
	}
	if c.Server.AuthRateLimit < 0 {
		return fmt.Errorf("server.auth_rate_limit must be >= 0 (got %d)", c.Server.AuthRateLimit)
	}
	if c.Database.MinConns > c.Database.MaxConns && c.Database.MaxConns > 0 {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.CleanupInterval < 0 {
		return fmt.Errorf("auth.cleanup_interval must be >= 0 (got %v)", c.Auth.CleanupInterval)
	}

	if c.Locks.RowTimeout <= 0 {
		return fmt.Errorf("locks.row_timeout must be > 0 (got %v)", c.Locks.RowTimeout)
	}
	if c.Locks.PairTimeout <= 0 {
		return fmt.Errorf("locks.pair_timeout must be > 0 (got %v)", c.Locks.PairTimeout)
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (c *CacheConfig) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be > 0 (got %d)", c.Size)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", c.TTL)
	}
	if c.BroadcastEnabled() && c.Topic == "" {
		return fmt.Errorf("topic is required when brokers are set")
	}
	return nil
}
