package tiltify

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Static errors for err113 compliance.
var (
	ErrInvalidRouteType = errors.New("invalid route type")
)

// RouteTypeCache remembers which hierarchy a campaign id belongs to. Entries
// are append-only: once an id is recorded, later records for it are ignored.
type RouteTypeCache interface {
	// Lookup returns RouteTypeUnknown and a nil error for ids never recorded.
	Lookup(ctx context.Context, campaignID string) (RouteType, error)
	Record(ctx context.Context, campaignID string, routeType RouteType) error
}

// MemoryRouteTypeCache is an in-process RouteTypeCache. It never evicts.
type MemoryRouteTypeCache struct {
	mu      sync.RWMutex
	entries map[string]RouteType
}

// NewMemoryRouteTypeCache creates an empty memory cache.
func NewMemoryRouteTypeCache() *MemoryRouteTypeCache {
	return &MemoryRouteTypeCache{
		entries: make(map[string]RouteType),
	}
}

// Lookup returns the recorded type of campaignID.
func (c *MemoryRouteTypeCache) Lookup(_ context.Context, campaignID string) (RouteType, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entries[campaignID], nil
}

// Record stores routeType unless campaignID already has an entry.
func (c *MemoryRouteTypeCache) Record(_ context.Context, campaignID string, routeType RouteType) error {
	if !routeType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRouteType, string(routeType))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[campaignID]; !ok {
		c.entries[campaignID] = routeType
	}

	return nil
}

// Len returns the number of recorded ids.
func (c *MemoryRouteTypeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// NoOpRouteTypeCache never remembers anything, so every campaign call tries
// the team route first.
type NoOpRouteTypeCache struct{}

// NewNoOpRouteTypeCache creates a new no-op cache.
func NewNoOpRouteTypeCache() *NoOpRouteTypeCache {
	return &NoOpRouteTypeCache{}
}

// Lookup always reports an unknown type.
func (c *NoOpRouteTypeCache) Lookup(context.Context, string) (RouteType, error) {
	return RouteTypeUnknown, nil
}

// Record does nothing.
func (c *NoOpRouteTypeCache) Record(context.Context, string, RouteType) error {
	return nil
}

// RouteTypeCacheChain consults caches in order (L1, L2, ...).
type RouteTypeCacheChain struct {
	caches []RouteTypeCache
}

// NewRouteTypeCacheChain creates a new cache chain.
func NewRouteTypeCacheChain(caches ...RouteTypeCache) *RouteTypeCacheChain {
	return &RouteTypeCacheChain{
		caches: caches,
	}
}

// Lookup returns the first known type, populating the earlier caches.
func (c *RouteTypeCacheChain) Lookup(ctx context.Context, campaignID string) (RouteType, error) {
	var lastErr error

	for i, cache := range c.caches {
		routeType, err := cache.Lookup(ctx, campaignID)
		if err != nil {
			lastErr = err

			continue
		}

		if routeType.Valid() {
			for j := range i {
				_ = c.caches[j].Record(ctx, campaignID, routeType)
			}

			return routeType, nil
		}
	}

	return RouteTypeUnknown, lastErr
}

// Record stores the type in all caches.
func (c *RouteTypeCacheChain) Record(ctx context.Context, campaignID string, routeType RouteType) error {
	var lastErr error

	for _, cache := range c.caches {
		err := cache.Record(ctx, campaignID, routeType)
		if err != nil {
			lastErr = err
		}
	}

	return lastErr
}
