package constants

import "time"

// API endpoints.
const (
	// DefaultBaseURL is the Tiltify v5 API host.
	DefaultBaseURL = "https://v5api.tiltify.com"

	// APIPath is the root of all resource routes.
	APIPath = "/api/public"

	// TokenPath is the OAuth token endpoint.
	TokenPath = "/oauth/token"
)

// OAuth parameters.
const (
	// GrantTypeClientCredentials is the only grant the public API supports.
	GrantTypeClientCredentials = "client_credentials"

	// ScopePublic is the scope requested for every token.
	ScopePublic = "public"

	// TokenTypeBearer is the authorization scheme of issued tokens.
	TokenTypeBearer = "Bearer"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination.
const (
	// PageLimit is the page size requested when following a cursor.
	PageLimit = 100

	// ParamAfter carries the continuation cursor.
	ParamAfter = "after"

	// ParamLimit carries the page size.
	ParamLimit = "limit"
)

// Display.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// UserAgent is sent with every request unless overridden.
const UserAgent = "tiltify-client-go/1.0"
