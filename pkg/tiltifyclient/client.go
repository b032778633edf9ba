package tiltifyclient

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/tiltify-client/internal/client"
	"github.com/fivetwenty-io/tiltify-client/pkg/tiltify"
)

// New creates a new Tiltify API client.
func New(ctx context.Context, config *tiltify.Config) (tiltify.Client, error) {
	client, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithClientCredentials creates a new client against the public API using
// the client_credentials grant.
func NewWithClientCredentials(ctx context.Context, clientID, clientSecret string) (tiltify.Client, error) {
	return New(ctx, &tiltify.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewFromConfigFile loads a configuration file and environment and creates a
// client from the result.
func NewFromConfigFile(ctx context.Context, path string) (tiltify.Client, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	return New(ctx, config)
}
