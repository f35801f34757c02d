package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation constants define acceptable bounds for configuration values
const (
	// Token validation
	minTokenLength = 50 // Discord tokens are typically 50+ characters

	// UpdateInterval validation
	minUpdateInterval = 30 * time.Second // Discord rate limits message edits
	maxUpdateInterval = 1 * time.Hour

	// QueryTimeout validation
	minQueryTimeout = 1 * time.Second
	maxQueryTimeout = 30 * time.Second

	// WorkerPoolSize validation
	minWorkerPoolSize = 1   // At least one worker needed
	maxWorkerPoolSize = 100 // Prevent resource exhaustion

	// Prefix validation
	maxPrefixLength = 5
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks if the configuration values are valid and within acceptable ranges.
// It returns all validation errors at once using errors.Join.
//
// Validated fields:
//   - Token: at least 50 characters
//   - Prefix: 1 to 5 characters, no whitespace
//   - UpdateInterval: between 30s and 1h
//   - QueryTimeout: between 1s and 30s, and shorter than UpdateInterval
//   - WorkerPoolSize: between 1 and 100
//   - QueryRateLimit: above zero
//   - LogLevel: one of debug, info, warn, error
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validatePrefix(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateUpdateInterval(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateQueryTimeout(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateWorkerPoolSize(); err != nil {
		errs = append(errs, err)
	}

	if c.QueryRateLimit <= 0 {
		errs = append(errs, fmt.Errorf("QUERY_RATE_LIMIT must be above 0, got %v", c.QueryRateLimit))
	}

	if err := c.validateLogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

// validateToken ensures the Discord token is present and has valid length
func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"DISCORD_TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

func (c *Config) validatePrefix() error {
	if c.Prefix == "" {
		return fmt.Errorf("COMMAND_PREFIX cannot be empty")
	}

	if len(c.Prefix) > maxPrefixLength {
		return fmt.Errorf("COMMAND_PREFIX must be at most %d characters, got %d", maxPrefixLength, len(c.Prefix))
	}

	if strings.ContainsAny(c.Prefix, " \t\n") {
		return fmt.Errorf("COMMAND_PREFIX cannot contain whitespace")
	}

	return nil
}

// validateUpdateInterval ensures status messages are not edited faster than Discord allows
func (c *Config) validateUpdateInterval() error {
	if c.UpdateInterval < minUpdateInterval {
		return fmt.Errorf(
			"UPDATE_INTERVAL must be at least %v to respect Discord rate limits, got %v (hint: recommended range is 1m-5m)",
			minUpdateInterval, c.UpdateInterval,
		)
	}

	if c.UpdateInterval > maxUpdateInterval {
		return fmt.Errorf(
			"UPDATE_INTERVAL must be at most %v, got %v",
			maxUpdateInterval, c.UpdateInterval,
		)
	}

	return nil
}

func (c *Config) validateQueryTimeout() error {
	if c.QueryTimeout < minQueryTimeout || c.QueryTimeout > maxQueryTimeout {
		return fmt.Errorf(
			"QUERY_TIMEOUT must be between %v and %v, got %v",
			minQueryTimeout, maxQueryTimeout, c.QueryTimeout,
		)
	}

	if c.QueryTimeout >= c.UpdateInterval {
		return fmt.Errorf(
			"QUERY_TIMEOUT (%v) must be shorter than UPDATE_INTERVAL (%v)",
			c.QueryTimeout, c.UpdateInterval,
		)
	}

	return nil
}

// validateWorkerPoolSize ensures the worker pool size is within safe limits
func (c *Config) validateWorkerPoolSize() error {
	if c.WorkerPoolSize < minWorkerPoolSize {
		return fmt.Errorf(
			"WORKER_POOL_SIZE must be at least %d, got %d",
			minWorkerPoolSize, c.WorkerPoolSize,
		)
	}

	if c.WorkerPoolSize > maxWorkerPoolSize {
		return fmt.Errorf(
			"WORKER_POOL_SIZE must be at most %d to prevent resource exhaustion, got %d (hint: recommended range is 5-25)",
			maxWorkerPoolSize, c.WorkerPoolSize,
		)
	}

	return nil
}

func (c *Config) validateLogLevel() error {
	for _, l := range logLevels {
		if strings.EqualFold(c.LogLevel, l) {
			return nil
		}
	}
	return fmt.Errorf("LOG_LEVEL must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
}
