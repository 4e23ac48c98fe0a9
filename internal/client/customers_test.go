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

func TestCustomersClient_CRUD(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == "POST" && r.URL.Path == "/v2/customers":
			var req payapi.CustomerCreateRequest
			_ = json.NewDecoder(r.Body).Decode(&req)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"resource": "customer", "id": "cst_8wmqcHMN4U", "name": req.Name, "email": req.Email,
			})
		case r.Method == "GET" && r.URL.Path == "/v2/customers/cst_8wmqcHMN4U":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"resource": "customer", "id": "cst_8wmqcHMN4U", "name": "Customer A",
			})
		case r.Method == "PATCH" && r.URL.Path == "/v2/customers/cst_8wmqcHMN4U":
			var req payapi.CustomerUpdateRequest
			_ = json.NewDecoder(r.Body).Decode(&req)

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"resource": "customer", "id": "cst_8wmqcHMN4U", "name": req.Name,
			})
		case r.Method == "DELETE" && r.URL.Path == "/v2/customers/cst_8wmqcHMN4U":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	ctx := context.Background()

	customer, err := client.Customers().Create(ctx, &payapi.CustomerCreateRequest{
		Name:  "Customer A",
		Email: "customer@example.org",
	})
	require.NoError(t, err)
	assert.Equal(t, "cst_8wmqcHMN4U", customer.ID)

	customer, err = client.Customers().Get(ctx, "cst_8wmqcHMN4U", nil)
	require.NoError(t, err)
	assert.Equal(t, "Customer A", customer.Name)

	customer, err = client.Customers().Update(ctx, "cst_8wmqcHMN4U", &payapi.CustomerUpdateRequest{Name: "Customer B"})
	require.NoError(t, err)
	assert.Equal(t, "Customer B", customer.Name)

	err = client.Customers().Delete(ctx, "cst_8wmqcHMN4U")
	require.NoError(t, err)
}

func TestSubscriptionsClient_NestedUnderCustomer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/customers/cst_8wmqcHMN4U/subscriptions/sub_rVKGtNd6s3", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource":   "subscription",
			"id":         "sub_rVKGtNd6s3",
			"customerId": "cst_8wmqcHMN4U",
			"interval":   "1 month",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	subscription, err := client.Subscriptions().
		Bind("cst_8wmqcHMN4U").
		Get(context.Background(), "sub_rVKGtNd6s3", nil)

	require.NoError(t, err)
	assert.Equal(t, "1 month", subscription.Interval)
}

func TestMethodsClient_NoPrefixConvention(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/methods/ideal", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource": "method", "id": "ideal", "description": "iDEAL",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	method, err := client.Methods().Get(context.Background(), "ideal", nil)
	require.NoError(t, err)
	assert.Equal(t, "iDEAL", method.Description)

	// Methods have no prefix convention, but an empty id is still rejected.
	_, err = client.Methods().Get(context.Background(), "", nil)
	require.Error(t, err)
	assert.True(t, payapi.IsRequestError(err))
}

func TestChargebacksClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments/tr_WDqYK6vllg/chargebacks/chb_n9z0tp", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource":  "chargeback",
			"id":        "chb_n9z0tp",
			"paymentId": "tr_WDqYK6vllg",
			"reason":    "fraudulent",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	chargeback, err := client.Chargebacks().
		Bind("tr_WDqYK6vllg").
		Get(context.Background(), "chb_n9z0tp", nil)

	require.NoError(t, err)
	assert.Equal(t, "fraudulent", chargeback.Reason)
}

// Chargebacks are raised by the schemes, never by the caller; mutations are
// rejected at the engine level.
func TestChargebacksClient_ReadOnly(t *testing.T) {
	for _, op := range []payapi.Operation{payapi.OpCreate, payapi.OpUpdate, payapi.OpDelete} {
		err := chargebacksDescriptor.Allows(op)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
		assert.Contains(t, err.Error(), "chargebacks")
	}
}
