// Package payclient provides the main entry point for creating payment API clients.
package payclient

import (
	"fmt"
	"strings"

	"github.com/paygate-io/payapi/internal/client"
	"github.com/paygate-io/payapi/internal/constants"
	"github.com/paygate-io/payapi/pkg/payapi"
)

// New creates a new payment API client.
//
// The API key is required and must be environment-scoped (test_ or live_).
// The endpoint defaults to the production API and may be overridden through
// Config.APIEndpoint for tests and staging.
func New(config *payapi.Config) (payapi.Client, error) {
	if config == nil {
		return nil, payapi.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, payapi.ErrAPIKeyRequired
	}

	if !strings.HasPrefix(config.APIKey, constants.TestKeyPrefix) &&
		!strings.HasPrefix(config.APIKey, constants.LiveKeyPrefix) {
		return nil, payapi.ErrInvalidAPIKey
	}

	if config.APIEndpoint != "" {
		config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithKey creates a client with just an API key.
func NewWithKey(apiKey string) (payapi.Client, error) {
	return New(&payapi.Config{APIKey: apiKey})
}

// normalizeEndpoint trims a trailing slash and defaults to https when no
// scheme is present.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
