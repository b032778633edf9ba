package client

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/tiltify-client/internal/auth"
	"github.com/fivetwenty-io/tiltify-client/internal/http"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errCloseFailed = errors.New("close failed")

// closingCache is a memory cache that counts Close calls.
type closingCache struct {
	*tiltify.MemoryRouteTypeCache

	closes int
	err    error
}

func (c *closingCache) Close() error {
	c.closes++

	return c.err
}

type staticTokens struct{}

func (staticTokens) EnsureToken(context.Context) (*auth.Token, error) {
	return &auth.Token{AccessToken: "token"}, nil
}

func (staticTokens) Invalidate() {}

func TestClient_Close(t *testing.T) {
	t.Parallel()

	config := &tiltify.Config{ClientID: "id", ClientSecret: "secret"}

	t.Run("closes a cache it built", func(t *testing.T) {
		t.Parallel()

		cache := &closingCache{MemoryRouteTypeCache: tiltify.NewMemoryRouteTypeCache()}
		client := assemble(config, http.NewClient("http://localhost"), staticTokens{}, cache, true)

		require.NoError(t, client.Close())
		require.NoError(t, client.Close())
		assert.Equal(t, 1, cache.closes)
	})

	t.Run("leaves a supplied cache open", func(t *testing.T) {
		t.Parallel()

		cache := &closingCache{MemoryRouteTypeCache: tiltify.NewMemoryRouteTypeCache()}

		client, err := New(context.Background(), &tiltify.Config{
			ClientID:       "id",
			ClientSecret:   "secret",
			RouteTypeCache: cache,
		})
		require.NoError(t, err)
		assert.False(t, client.ownsCache)

		require.NoError(t, client.Close())
		assert.Zero(t, cache.closes)
	})

	t.Run("cache built from config is owned", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &tiltify.Config{
			ClientID:     "id",
			ClientSecret: "secret",
			Cache:        &tiltify.CacheConfig{Type: tiltify.CacheTypeNone},
		})
		require.NoError(t, err)
		assert.True(t, client.ownsCache)
		assert.NoError(t, client.Close())
	})

	t.Run("reports the close error", func(t *testing.T) {
		t.Parallel()

		cache := &closingCache{MemoryRouteTypeCache: tiltify.NewMemoryRouteTypeCache(), err: errCloseFailed}
		client := assemble(config, http.NewClient("http://localhost"), staticTokens{}, cache, true)

		err := client.Close()
		require.ErrorIs(t, err, errCloseFailed)
		assert.ErrorIs(t, client.Close(), errCloseFailed)
		assert.Equal(t, 1, cache.closes)
	})
}
