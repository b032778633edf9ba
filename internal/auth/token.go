package auth

import (
	"sync"
	"time"

	"github.com/fivetwenty-io/tiltify-client/internal/constants"
)

// Token is an access token issued by the credential exchange. Tokens are
// replaced wholesale, never patched.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type,omitempty"`
	Scope       string    `json:"scope,omitempty"`
	ExpiresIn   int64     `json:"expires_in,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
	ExpiresAt   time.Time `json:"-"`
}

// Valid reports whether the token can be used now.
func (t *Token) Valid() bool {
	return t.ValidAt(time.Now())
}

// ValidAt reports whether the token can be used at now, which is any instant
// before ExpiresAt. A zero ExpiresAt never expires.
func (t *Token) ValidAt(now time.Time) bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return now.Before(t.ExpiresAt)
}

// AuthorizationHeader returns the Authorization header value for the token.
func (t *Token) AuthorizationHeader() string {
	return constants.TokenTypeBearer + " " + t.AccessToken
}

// TokenStore provides thread-safe token storage.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates a new token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set stores a token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}
