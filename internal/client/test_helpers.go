package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	internalhttp "github.com/paygate-io/payapi/internal/http"
)

// NewTestClient creates a client against the given base URL, bypassing the
// key validation that payclient.New performs.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, "test_0000000000000000000000000000000000")

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// spyServer is an httptest server that counts the requests it receives, so
// tests can prove that local validation failures never reach the transport.
type spyServer struct {
	*httptest.Server

	requests atomic.Int64
}

// newSpyServer serves the given payload with the given status for every
// request, counting invocations.
func newSpyServer(status int, payload interface{}) *spyServer {
	spy := &spyServer{}

	spy.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spy.requests.Add(1)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if payload != nil {
			_ = json.NewEncoder(w).Encode(payload)
		}
	}))

	return spy
}

// Requests returns the number of requests the server has received.
func (s *spyServer) Requests() int {
	return int(s.requests.Load())
}
