package tiltify

import (
	"context"
	"errors"
	"fmt"
)

// CacheType represents the type of cache backend.
type CacheType string

const (
	// CacheTypeMemory represents in-memory cache.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS represents NATS KV cache.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeNone represents no caching.
	CacheTypeNone CacheType = "none"
)

// Static errors for err113 compliance.
var (
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
)

// CacheConfig configures the route-type cache backend.
type CacheConfig struct {
	// Type is the cache backend type
	Type CacheType `mapstructure:"type" yaml:"type"`

	// NATS KV cache configuration
	NATS *NATSKVConfig `mapstructure:"nats" yaml:"nats"`
}

// DefaultCacheConfig returns default cache configuration.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type: CacheTypeMemory,
	}
}

// NewCacheFromConfig creates a cache backend from configuration. The context
// bounds the NATS connection and bucket setup.
func NewCacheFromConfig(ctx context.Context, config *CacheConfig) (RouteTypeCache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Type {
	case CacheTypeMemory, "":
		return NewMemoryRouteTypeCache(), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSKVRouteTypeCache(ctx, config.NATS)

	case CacheTypeNone:
		return NewNoOpRouteTypeCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, config.Type)
	}
}

// CacheBuilder helps build cache configurations.
type CacheBuilder struct {
	config *CacheConfig
}

// NewCacheBuilder creates a new cache builder.
func NewCacheBuilder() *CacheBuilder {
	return &CacheBuilder{
		config: DefaultCacheConfig(),
	}
}

// WithType sets the cache type.
func (b *CacheBuilder) WithType(cacheType CacheType) *CacheBuilder {
	b.config.Type = cacheType

	return b
}

// WithNATSConfig sets NATS cache configuration.
func (b *CacheBuilder) WithNATSConfig(config *NATSKVConfig) *CacheBuilder {
	b.config.NATS = config

	return b
}

// Build creates the cache from the configuration.
func (b *CacheBuilder) Build(ctx context.Context) (RouteTypeCache, error) {
	return NewCacheFromConfig(ctx, b.config)
}
