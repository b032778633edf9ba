package auth_test

import (
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/tiltify-client/internal/auth"
	"github.com/stretchr/testify/assert"
)

func TestToken_ValidAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		token    *auth.Token
		expected bool
	}{
		{
			name:     "nil token",
			token:    nil,
			expected: false,
		},
		{
			name:     "empty access token",
			token:    &auth.Token{ExpiresAt: now.Add(time.Hour)},
			expected: false,
		},
		{
			name:     "token without expiry",
			token:    &auth.Token{AccessToken: "tok"},
			expected: true,
		},
		{
			name:     "future expiry",
			token:    &auth.Token{AccessToken: "tok", ExpiresAt: now.Add(2 * time.Hour)},
			expected: true,
		},
		{
			name:     "past expiry",
			token:    &auth.Token{AccessToken: "tok", ExpiresAt: now.Add(-time.Minute)},
			expected: false,
		},
		{
			name:     "last seconds of the window",
			token:    &auth.Token{AccessToken: "tok", ExpiresAt: now.Add(time.Second)},
			expected: true,
		},
		{
			name:     "expiring exactly now",
			token:    &auth.Token{AccessToken: "tok", ExpiresAt: now},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.token.ValidAt(now))
		})
	}
}

func TestToken_AuthorizationHeader(t *testing.T) {
	t.Parallel()

	token := &auth.Token{AccessToken: "abc123"}
	assert.Equal(t, "Bearer abc123", token.AuthorizationHeader())
}

func TestTokenStore(t *testing.T) {
	t.Parallel()

	t.Run("new store is empty", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, auth.NewTokenStore().Get())
	})

	t.Run("set replaces and clear drops", func(t *testing.T) {
		t.Parallel()

		store := auth.NewTokenStore()
		store.Set(&auth.Token{AccessToken: "first"})
		store.Set(&auth.Token{AccessToken: "second", Scope: "public"})

		got := store.Get()
		assert.Equal(t, "second", got.AccessToken)
		assert.Equal(t, "public", got.Scope)

		store.Clear()
		assert.Nil(t, store.Get())
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()

		store := auth.NewTokenStore()

		var wg sync.WaitGroup

		for _, value := range []string{"token-a", "token-b"} {
			wg.Add(2)

			go func() {
				defer wg.Done()

				for range 100 {
					store.Set(&auth.Token{AccessToken: value})
				}
			}()

			go func() {
				defer wg.Done()

				for range 100 {
					_ = store.Get()
				}
			}()
		}

		wg.Wait()

		final := store.Get()
		assert.NotNil(t, final)
		assert.Contains(t, []string{"token-a", "token-b"}, final.AccessToken)
	})
}
