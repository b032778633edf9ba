package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/fivetwenty-io/tiltify-client/internal/constants"
	tiltifyhttp "github.com/fivetwenty-io/tiltify-client/internal/http"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

// TokenManager hands out access tokens.
type TokenManager interface {
	// EnsureToken returns a token valid now, exchanging credentials if needed.
	EnsureToken(ctx context.Context) (*Token, error)
	// Invalidate drops the held token so the next EnsureToken refreshes.
	Invalidate()
}

// ClientCredentialsConfig configures the client_credentials exchange.
type ClientCredentialsConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
}

// ClientCredentialsTokenManager exchanges client credentials for tokens and
// holds the current one. Refreshes are serialized.
type ClientCredentialsTokenManager struct {
	config    *ClientCredentialsConfig
	transport tiltifyhttp.Doer
	store     *TokenStore
	mu        sync.Mutex
	now       func() time.Time
	logger    tiltify.Logger
}

// ManagerOption configures the token manager.
type ManagerOption func(*ClientCredentialsTokenManager)

// WithLogger sets the logger.
func WithLogger(logger tiltify.Logger) ManagerOption {
	return func(m *ClientCredentialsTokenManager) {
		m.logger = logger
	}
}

// WithClock overrides the clock used for expiry decisions.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *ClientCredentialsTokenManager) {
		m.now = now
	}
}

// NewClientCredentialsTokenManager creates a token manager that posts to
// config.TokenURL through transport.
func NewClientCredentialsTokenManager(config *ClientCredentialsConfig, transport tiltifyhttp.Doer, opts ...ManagerOption) *ClientCredentialsTokenManager {
	manager := &ClientCredentialsTokenManager{
		config:    config,
		transport: transport,
		store:     NewTokenStore(),
		now:       time.Now,
		logger:    tiltify.NoopLogger{},
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

// EnsureToken returns the held token while it is valid, otherwise performs a
// credential exchange and stores the result.
func (m *ClientCredentialsTokenManager) EnsureToken(ctx context.Context) (*Token, error) {
	if token := m.store.Get(); token.ValidAt(m.now()) {
		return token, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Another caller may have refreshed while we waited.
	if token := m.store.Get(); token.ValidAt(m.now()) {
		return token, nil
	}

	token, err := m.exchange(ctx)
	if err != nil {
		return nil, err
	}

	m.store.Set(token)

	m.logger.Debug("Access token refreshed", map[string]interface{}{
		"expires_at": token.ExpiresAt,
	})

	return token, nil
}

// Invalidate drops the held token.
func (m *ClientCredentialsTokenManager) Invalidate() {
	m.store.Clear()
}

func (m *ClientCredentialsTokenManager) exchange(ctx context.Context) (*Token, error) {
	issuedAt := m.now()

	query := url.Values{}
	query.Set("client_id", m.config.ClientID)
	query.Set("client_secret", m.config.ClientSecret)
	query.Set("grant_type", constants.GrantTypeClientCredentials)
	query.Set("scope", constants.ScopePublic)

	resp, err := m.transport.Do(ctx, &tiltifyhttp.Request{
		Method:   http.MethodPost,
		Path:     m.config.TokenURL,
		RawQuery: query.Encode(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request token: %w", err)
	}

	var envelope tiltify.Envelope

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}

	if envelope.HasError() {
		apiErr, err := envelope.APIError()
		if err != nil {
			return nil, fmt.Errorf("failed to parse token error: %w", err)
		}

		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}

		return nil, &tiltify.AuthError{APIError: apiErr}
	}

	token := &Token{}

	err = json.Unmarshal(resp.Body, token)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}

	if token.AccessToken == "" {
		return nil, constants.ErrNoAccessToken
	}

	token.ExpiresAt = expiresAt(token, issuedAt)

	return token, nil
}

// expiresAt anchors expires_in on the server's created_at when it parses, and
// on the local issue time otherwise. A token without expires_in never expires.
func expiresAt(token *Token, issuedAt time.Time) time.Time {
	if token.ExpiresIn <= 0 {
		return time.Time{}
	}

	lifetime := time.Duration(token.ExpiresIn) * time.Second

	if token.CreatedAt != "" {
		created, err := time.Parse(time.RFC3339, token.CreatedAt)
		if err == nil {
			return created.Add(lifetime)
		}
	}

	return issuedAt.Add(lifetime)
}
