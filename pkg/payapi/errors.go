package payapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a rejection from the API or a transport-level failure
// observed after a request was issued.
type APIError struct {
	Status int    `json:"status" yaml:"status"`
	Title  string `json:"title"  yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
	// Field names the offending request field when the API reports one.
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Links carries diagnostic links (documentation, dashboard) when present.
	Links Links `json:"_links,omitempty" yaml:"links,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (status: %d, field: %s)", e.Title, e.Detail, e.Status, e.Field)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Title, e.Detail, e.Status)
}

// RequestError represents a local precondition failure detected before any
// network request is issued: a malformed resource id, a missing parent id, or
// an operation the resource kind does not support.
type RequestError struct {
	Message string
	// Field names the offending input when known.
	Field string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return e.Message
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrInvalidAPIKey       = errors.New("API key must start with test_ or live_")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrMalformedResponse   = errors.New("malformed API response")
	ErrNoMoreItems         = errors.New("no more items")
)

// IsRequestError checks if the error is a local precondition failure.
func IsRequestError(err error) bool {
	reqErr := &RequestError{}

	return errors.As(err, &reqErr)
}

// IsNotFound checks if the error is a 404 rejection from the API.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is a 401 rejection from the API.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}

	return false
}

// IsUnprocessable checks if the error is a 422 rejection from the API.
func IsUnprocessable(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnprocessableEntity
	}

	return false
}

// ClassifyResponse builds an APIError from a non-2xx response. It tolerates a
// body that is absent, non-JSON, or missing fields: every field defaults to an
// empty value and Detail falls back to the standard text for the status code.
// Classification itself never fails.
func ClassifyResponse(status int, body []byte) *APIError {
	apiErr := &APIError{}

	if len(body) > 0 {
		// A decode failure leaves the zero value in place.
		_ = json.Unmarshal(body, apiErr)
	}

	if apiErr.Status == 0 {
		apiErr.Status = status
	}

	if apiErr.Title == "" {
		apiErr.Title = http.StatusText(status)
	}

	if apiErr.Detail == "" {
		apiErr.Detail = "the API returned an error without further detail"
	}

	return apiErr
}
