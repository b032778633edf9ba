//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltifyclient"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	CampaignID   string
	CauseID      string
	Verbose      bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		ClientID:     os.Getenv("TILTIFY_CLIENT_ID"),
		ClientSecret: os.Getenv("TILTIFY_CLIENT_SECRET"),
		BaseURL:      os.Getenv("TILTIFY_BASE_URL"),
		CampaignID:   os.Getenv("TILTIFY_TEST_CAMPAIGN_ID"),
		CauseID:      os.Getenv("TILTIFY_TEST_CAUSE_ID"),
		Verbose:      os.Getenv("TILTIFY_VERBOSE") == "true",
	}
}

// newLiveClient skips the test unless credentials are configured.
func newLiveClient(t *testing.T) (tiltify.Client, *TestConfig) {
	t.Helper()

	config := LoadTestConfig()
	if config.ClientID == "" || config.ClientSecret == "" {
		t.Skip("TILTIFY_CLIENT_ID and TILTIFY_CLIENT_SECRET are required")
	}

	clientConfig := &tiltify.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		BaseURL:      config.BaseURL,
		Debug:        config.Verbose,
	}

	if config.Verbose {
		clientConfig.Logger = tiltify.NewSlogLogger(nil)
	}

	client, err := tiltifyclient.New(context.Background(), clientConfig)
	require.NoError(t, err)

	return client, config
}
