package tiltify_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         string
		description string
		status      int
		message     string
		wantErr     error
	}{
		{name: "object with numeric status", raw: `{"status":404,"message":"Not Found"}`, status: 404, message: "Not Found"},
		{name: "object with string status", raw: `{"status":"422","message":"Invalid"}`, status: 422, message: "Invalid"},
		{name: "object without status", raw: `{"message":"odd"}`, status: 0, message: "odd"},
		{name: "oauth string", raw: `"invalid_client"`, message: "invalid_client"},
		{name: "oauth string with description", raw: `"invalid_client"`, description: "Client authentication failed", message: "invalid_client: Client authentication failed"},
		{name: "null", raw: `null`, wantErr: tiltify.ErrNoErrorEnvelope},
		{name: "empty", raw: ``, wantErr: tiltify.ErrNoErrorEnvelope},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			apiErr, err := tiltify.ParseAPIError(json.RawMessage(tt.raw), tt.description)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestAPIError_Fields(t *testing.T) {
	t.Parallel()

	apiErr, err := tiltify.ParseAPIError(json.RawMessage(`{"status":400,"message":"Bad","errors":{"limit":["too big"]}}`), "")
	require.NoError(t, err)

	value, ok := apiErr.Field("errors")
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"limit": []interface{}{"too big"}}, value)

	_, ok = apiErr.Field("missing")
	assert.False(t, ok)

	assert.Equal(t, "tiltify: Bad (status: 400)", apiErr.Error())
	assert.Equal(t, "tiltify: API error (status: 503)", (&tiltify.APIError{Status: 503}).Error())
}

func TestErrGone(t *testing.T) {
	t.Parallel()

	err := tiltify.ErrGone()
	assert.Equal(t, http.StatusGone, err.Status)
	assert.Equal(t, tiltify.GoneMessage, err.Message)
	assert.True(t, tiltify.IsGone(err))

	status, ok := err.Field("status")
	require.True(t, ok)
	assert.Equal(t, http.StatusGone, status)
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting campaign: %w", &tiltify.APIError{Status: http.StatusNotFound})
	unauthorized := &tiltify.AuthError{APIError: &tiltify.APIError{Status: http.StatusUnauthorized, Message: "nope"}}

	assert.True(t, tiltify.IsNotFound(notFound))
	assert.False(t, tiltify.IsUnauthorized(notFound))
	assert.True(t, tiltify.IsUnauthorized(unauthorized))
	assert.Equal(t, "tiltify: credential exchange failed: tiltify: nope (status: 401)", unauthorized.Error())
	assert.Zero(t, tiltify.StatusCode(errors.New("plain")))
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")

	withStatus := &tiltify.TransportError{Method: "GET", URL: "https://x/api", StatusCode: 502, Err: cause}
	assert.Equal(t, "tiltify: GET https://x/api failed (http status 502): connection refused", withStatus.Error())
	require.ErrorIs(t, withStatus, cause)

	withoutStatus := &tiltify.TransportError{Method: "POST", URL: "https://x/token", Err: cause}
	assert.Equal(t, "tiltify: POST https://x/token failed: connection refused", withoutStatus.Error())
}

func TestMissingParameterError(t *testing.T) {
	t.Parallel()

	err := &tiltify.MissingParameterError{Parameter: "campaignId", Route: tiltify.RouteCampaign}
	assert.Equal(t, "tiltify: missing path parameter campaignId for campaigns/{campaignId}", err.Error())
}
