package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paygate-io/payapi/pkg/payapi"
)

func TestRefundsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments/tr_WDqYK6vllg/refunds", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource":  "refund",
			"id":        "re_4qqhO89gsT",
			"status":    "pending",
			"paymentId": "tr_WDqYK6vllg",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	refund, err := client.Refunds().Create(context.Background(), &payapi.RefundCreateRequest{
		Amount: payapi.Amount{Currency: "EUR", Value: "5.00"},
	}, &payapi.Options{ParentID: "tr_WDqYK6vllg"})

	require.NoError(t, err)
	assert.Equal(t, "re_4qqhO89gsT", refund.ID)
	assert.Equal(t, "tr_WDqYK6vllg", refund.PaymentID)
}

func TestRefundsClient_Get_Bound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments/tr_WDqYK6vllg/refunds/re_4qqhO89gsT", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource": "refund",
			"id":       "re_4qqhO89gsT",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	refund, err := client.Refunds().Bind("tr_WDqYK6vllg").Get(context.Background(), "re_4qqhO89gsT", nil)
	require.NoError(t, err)
	assert.Equal(t, "re_4qqhO89gsT", refund.ID)
}

func TestRefundsClient_ExplicitParentWinsOverBound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payments/tr_explicit/refunds/re_4qqhO89gsT", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource": "refund",
			"id":       "re_4qqhO89gsT",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	bound := client.Refunds().Bind("tr_bound")

	_, err := bound.Get(context.Background(), "re_4qqhO89gsT", &payapi.Options{ParentID: "tr_explicit"})
	require.NoError(t, err)
}

func TestRefundsClient_MissingParent(t *testing.T) {
	spy := newSpyServer(http.StatusOK, nil)
	defer spy.Close()

	client := NewTestClient(spy.URL)

	_, err := client.Refunds().Get(context.Background(), "re_4qqhO89gsT", nil)
	require.Error(t, err)
	assert.True(t, payapi.IsRequestError(err))
	assert.Contains(t, err.Error(), "missing payment id")
	assert.Equal(t, 0, spy.Requests())
}

func TestRefundsClient_InvalidParentPrefix(t *testing.T) {
	spy := newSpyServer(http.StatusOK, nil)
	defer spy.Close()

	client := NewTestClient(spy.URL)

	_, err := client.Refunds().Get(context.Background(), "re_4qqhO89gsT", &payapi.Options{ParentID: "ord_123"})
	require.Error(t, err)
	assert.True(t, payapi.IsRequestError(err))
	assert.Contains(t, err.Error(), "payment id is invalid")
	assert.Equal(t, 0, spy.Requests())
}

// Parent ids are scoped per call: overlapping calls with different parents
// must each compose their own path.
func TestRefundsClient_ConcurrentParentScoping(t *testing.T) {
	var mu sync.Mutex

	paths := make(map[string]int)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths[r.URL.Path]++
		mu.Unlock()

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"resource": "refund",
			"id":       "re_4qqhO89gsT",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)
	refunds := client.Refunds()

	var wg sync.WaitGroup

	parents := []string{"tr_first", "tr_second", "tr_third"}
	for i := 0; i < 50; i++ {
		for _, parent := range parents {
			wg.Add(1)

			go func(parent string) {
				defer wg.Done()

				_, err := refunds.Get(context.Background(), "re_4qqhO89gsT", &payapi.Options{ParentID: parent})
				assert.NoError(t, err)
			}(parent)
		}
	}

	wg.Wait()

	for _, parent := range parents {
		assert.Equal(t, 50, paths["/v2/payments/"+parent+"/refunds/re_4qqhO89gsT"])
	}
}
