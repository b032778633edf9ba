package tiltify

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// GoneMessage is the message carried by operations removed from the v5 API.
const GoneMessage = "This API is no longer available in Tiltify API v5"

// Static errors for err113 compliance.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrClientIDRequired     = errors.New("client ID is required")
	ErrClientSecretRequired = errors.New("client secret is required")
	ErrNotPaginated         = errors.New("response data is not a list")
	ErrEmptyResponse        = errors.New("empty response body")
	ErrNoErrorEnvelope      = errors.New("no error field in envelope")
)

// APIError is an error envelope returned by the API. Fields holds every field
// of the server's error object, status and message included.
type APIError struct {
	Status  int                    `json:"status"  yaml:"status"`
	Message string                 `json:"message" yaml:"message"`
	Fields  map[string]interface{} `json:"-"       yaml:"fields,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tiltify: API error (status: %d)", e.Status)
	}

	return fmt.Sprintf("tiltify: %s (status: %d)", e.Message, e.Status)
}

// Field returns a server-supplied field of the error object.
func (e *APIError) Field(name string) (interface{}, bool) {
	value, ok := e.Fields[name]

	return value, ok
}

// ErrGone builds the 410 error returned by operations removed from the API.
func ErrGone() *APIError {
	return &APIError{
		Status:  http.StatusGone,
		Message: GoneMessage,
		Fields: map[string]interface{}{
			"status":  http.StatusGone,
			"message": GoneMessage,
		},
	}
}

// ParseAPIError builds an APIError from the raw "error" member of an envelope.
// A bare string error (the OAuth form) becomes the message, with the optional
// description appended.
func ParseAPIError(raw json.RawMessage, description string) (*APIError, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrNoErrorEnvelope
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		apiErr := &APIError{
			Message: text,
			Fields:  map[string]interface{}{"error": text},
		}

		if description != "" {
			apiErr.Message = text + ": " + description
			apiErr.Fields["error_description"] = description
		}

		return apiErr, nil
	}

	fields := map[string]interface{}{}

	err := json.Unmarshal(raw, &fields)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error envelope: %w", err)
	}

	apiErr := &APIError{Fields: fields}

	if message, ok := fields["message"].(string); ok {
		apiErr.Message = message
	}

	apiErr.Status = statusOf(fields["status"])

	return apiErr, nil
}

func statusOf(value interface{}) int {
	switch status := value.(type) {
	case float64:
		return int(status)
	case string:
		parsed, err := strconv.Atoi(status)
		if err == nil {
			return parsed
		}
	}

	return 0
}

// AuthError is returned when the credential exchange reports an error.
type AuthError struct {
	*APIError
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return "tiltify: credential exchange failed: " + e.APIError.Error()
}

// Unwrap exposes the underlying API error.
func (e *AuthError) Unwrap() error {
	return e.APIError
}

// TransportError is a network failure or a response body that is not JSON.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("tiltify: %s %s failed (http status %d): %v", e.Method, e.URL, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("tiltify: %s %s failed: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// MissingParameterError is returned when a route placeholder has no value.
type MissingParameterError struct {
	Parameter string
	Route     string
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("tiltify: missing path parameter %s for %s", e.Parameter, e.Route)
}

// UnsupportedOperationError is returned when an operation has no route in the
// hierarchy a campaign is already known to belong to.
type UnsupportedOperationError struct {
	Operation string
	RouteType RouteType
}

// Error implements the error interface.
func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("tiltify: operation %s invalid for campaign of type %s", e.Operation, e.RouteType)
}

// StatusCode returns the API status carried by err, or 0.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsGone checks if the error reports an operation removed from the API.
func IsGone(err error) bool {
	return StatusCode(err) == http.StatusGone
}
