package config

import (
	"fmt"

	"github.com/lgbarn/chessengine-go/internal/cache"
	"github.com/lgbarn/chessengine-go/internal/errors"
)

// CacheConfig holds settings for the legal-move position cache.
type CacheConfig struct {
	// Enabled shares generated moves between searches.
	Enabled bool

	// Capacity bounds the number of cached positions.
	Capacity int
}

// NewCacheConfig creates a CacheConfig with default values.
func NewCacheConfig() *CacheConfig {
	return &CacheConfig{
		Enabled:  true,
		Capacity: cache.DefaultCapacity,
	}
}

// Validate checks that the cache configuration is valid.
func (c *CacheConfig) Validate() error {
	if c.Enabled && c.Capacity <= 0 {
		return fmt.Errorf("cache capacity %d: %w", c.Capacity, errors.ErrInvalidConfig)
	}
	return nil
}
