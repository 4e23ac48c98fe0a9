// Package constants centralizes defaults shared by the transport and client
// layers.
package constants

import "time"

// API surface.
const (
	// DefaultAPIEndpoint is the production API base URL.
	DefaultAPIEndpoint = "https://api.paygate.io"

	// APIVersionPath is the path prefix of the current API version.
	APIVersionPath = "/v2"

	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "payapi-go/1.0"
)

// API key prefixes. Keys are environment-scoped.
const (
	TestKeyPrefix = "test_"
	LiveKeyPrefix = "live_"
)

// HTTP defaults.
const (
	DefaultHTTPTimeout = 30 * time.Second

	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination defaults.
const (
	// DefaultListLimit is the page size used when none is requested.
	DefaultListLimit = 50

	// MaxListLimit is the largest page size the API accepts.
	MaxListLimit = 250
)
