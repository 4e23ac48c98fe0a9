package payclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paygate-io/payapi/pkg/payapi"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  *payapi.Config
		wantErr error
	}{
		{name: "nil config", config: nil, wantErr: payapi.ErrConfigRequired},
		{name: "missing key", config: &payapi.Config{}, wantErr: payapi.ErrAPIKeyRequired},
		{name: "unscoped key", config: &payapi.Config{APIKey: "sk_abc123"}, wantErr: payapi.ErrInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_AcceptsScopedKeys(t *testing.T) {
	for _, key := range []string{"test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM", "live_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM"} {
		client, err := New(&payapi.Config{APIKey: key})
		require.NoError(t, err)
		assert.NotNil(t, client)
	}
}

func TestNewWithKey(t *testing.T) {
	client, err := NewWithKey("test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM")
	require.NoError(t, err)
	assert.NotNil(t, client.Payments())
}

func TestNew_EndpointNormalization(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{endpoint: "https://api.example.org/", want: "https://api.example.org"},
		{endpoint: "api.example.org", want: "https://api.example.org"},
		{endpoint: "http://localhost:8080", want: "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeEndpoint(tt.endpoint))
		})
	}
}

func TestClient_EndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments/tr_WDqYK6vllg", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer test_"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource": "payment",
			"id":       "tr_WDqYK6vllg",
			"status":   "open",
		})
	}))
	defer server.Close()

	client, err := New(&payapi.Config{
		APIKey:      "test_dHar4XY7LxsDOtmnkVtjNVWXLSlXsM",
		APIEndpoint: server.URL,
	})
	require.NoError(t, err)

	payment, err := client.Payments().Get(context.Background(), "tr_WDqYK6vllg", nil)
	require.NoError(t, err)
	assert.True(t, payment.IsOpen())
}
