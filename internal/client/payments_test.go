package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paygate-io/payapi/pkg/payapi"
)

func TestPaymentsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		var req payapi.PaymentCreateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "Order #12345", req.Description)
		assert.Equal(t, "10.00", req.Amount.Value)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource":    "payment",
			"id":          "tr_WDqYK6vllg",
			"status":      "open",
			"description": req.Description,
			"amount":      req.Amount,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	payment, err := client.Payments().Create(context.Background(), &payapi.PaymentCreateRequest{
		Amount:      payapi.Amount{Currency: "EUR", Value: "10.00"},
		Description: "Order #12345",
	})

	require.NoError(t, err)
	assert.Equal(t, "tr_WDqYK6vllg", payment.ID)
	assert.Equal(t, "open", payment.Status)
	assert.True(t, payment.IsOpen())
}

func TestPaymentsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments/tr_WDqYK6vllg", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource": "payment",
			"id":       "tr_WDqYK6vllg",
			"status":   "paid",
			"amount":   map[string]string{"currency": "EUR", "value": "10.00"},
			"_links": map[string]interface{}{
				"checkout": map[string]string{"href": "https://pay.example.org/tr_WDqYK6vllg"},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	payment, err := client.Payments().Get(context.Background(), "tr_WDqYK6vllg", nil)
	require.NoError(t, err)
	assert.Equal(t, "tr_WDqYK6vllg", payment.ID)
	assert.Equal(t, "paid", payment.Status)
	assert.Equal(t, "https://pay.example.org/tr_WDqYK6vllg", payment.CheckoutURL())
}

func TestPaymentsClient_Get_InvalidID(t *testing.T) {
	spy := newSpyServer(http.StatusOK, nil)
	defer spy.Close()

	client := NewTestClient(spy.URL)

	_, err := client.Payments().Get(context.Background(), "ord_WDqYK6vllg", nil)
	require.Error(t, err)
	assert.True(t, payapi.IsRequestError(err))
	assert.Contains(t, err.Error(), "payment id is invalid")
	assert.Equal(t, 0, spy.Requests(), "invalid ids must fail before any request")
}

func TestPaymentsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"count": 2,
			"_embedded": map[string]interface{}{
				"payments": []map[string]interface{}{
					{"resource": "payment", "id": "tr_one", "status": "paid"},
					{"resource": "payment", "id": "tr_two", "status": "open"},
				},
			},
			"_links": map[string]interface{}{},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	page, err := client.Payments().List(context.Background(), payapi.NewListOptions().WithLimit(10))
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "tr_one", page.Items[0].ID)
	assert.Equal(t, "tr_two", page.Items[1].ID)
}

func TestPaymentsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments/tr_WDqYK6vllg", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var req payapi.PaymentUpdateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource":    "payment",
			"id":          "tr_WDqYK6vllg",
			"description": req.Description,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	payment, err := client.Payments().Update(context.Background(), "tr_WDqYK6vllg", &payapi.PaymentUpdateRequest{
		Description: "Updated description",
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated description", payment.Description)
}

func TestPaymentsClient_Cancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments/tr_WDqYK6vllg", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	// An empty success body still counts as success.
	err := client.Payments().Cancel(context.Background(), "tr_WDqYK6vllg")
	require.NoError(t, err)

	// Delete is an alias for the same operation.
	err = client.Payments().Delete(context.Background(), "tr_WDqYK6vllg")
	require.NoError(t, err)
}

func TestPaymentsClient_Get_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": 404,
			"title":  "Not Found",
			"detail": "No payment exists with token tr_missing.",
			"_links": map[string]interface{}{
				"documentation": map[string]string{"href": "https://docs.example.org/errors"},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Payments().Get(context.Background(), "tr_missing", nil)
	require.Error(t, err)
	assert.True(t, payapi.IsNotFound(err))

	apiErr := &payapi.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "No payment exists with token tr_missing.", apiErr.Detail)
	assert.Equal(t, "https://docs.example.org/errors", apiErr.Links["documentation"].Href)
}
