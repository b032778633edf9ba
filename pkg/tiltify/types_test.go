package tiltify_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_Cursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		after  string
		cursor string
		ok     bool
	}{
		{name: "string", after: `"abc"`, cursor: "abc", ok: true},
		{name: "empty string", after: `""`, ok: false},
		{name: "null", after: `null`, ok: false},
		{name: "number", after: `20`, cursor: "20", ok: true},
		{name: "zero", after: `0`, cursor: "0", ok: false},
		{name: "false", after: `false`, cursor: "true", ok: false},
		{name: "missing", after: ``, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			metadata := &tiltify.Metadata{After: json.RawMessage(tt.after)}

			cursor, ok := metadata.Cursor()
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.cursor, cursor)
			}
		})
	}

	t.Run("nil metadata", func(t *testing.T) {
		t.Parallel()

		var metadata *tiltify.Metadata

		_, ok := metadata.Cursor()
		assert.False(t, ok)
	})
}

func TestEnvelope(t *testing.T) {
	t.Parallel()

	var envelope tiltify.Envelope

	require.NoError(t, json.Unmarshal([]byte(`{"data":[1,2],"metadata":{"after":"x","limit":10},"error":null}`), &envelope))
	assert.False(t, envelope.HasError())
	assert.JSONEq(t, `[1,2]`, string(envelope.Data))
	assert.Equal(t, 10, envelope.Metadata.Limit)

	require.NoError(t, json.Unmarshal([]byte(`{"error":{"status":401,"message":"Unauthorized"}}`), &envelope))
	assert.True(t, envelope.HasError())

	apiErr, err := envelope.APIError()
	require.NoError(t, err)
	assert.Equal(t, 401, apiErr.Status)
}

func TestRouteType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", tiltify.RouteTypeUnknown.String())
	assert.Equal(t, "user", tiltify.RouteTypeUser.String())
	assert.False(t, tiltify.RouteTypeUnknown.Valid())
	assert.True(t, tiltify.RouteTypeTeam.Valid())
	assert.False(t, tiltify.RouteType("org").Valid())
}
