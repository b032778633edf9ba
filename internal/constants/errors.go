package constants

import "errors"

// Token errors.
var (
	ErrNoAccessToken  = errors.New("token response has no access_token")
	ErrNoTokenManager = errors.New("token manager is required")
)
