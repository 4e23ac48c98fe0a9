package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paygate-io/payapi/pkg/payapi"
)

func TestNew(t *testing.T) {
	t.Run("requires config", func(t *testing.T) {
		_, err := New(nil)
		require.ErrorIs(t, err, payapi.ErrConfigRequired)
	})

	t.Run("requires API key", func(t *testing.T) {
		_, err := New(&payapi.Config{})
		require.ErrorIs(t, err, payapi.ErrAPIKeyRequired)
	})

	t.Run("initializes all resource clients", func(t *testing.T) {
		client, err := New(&payapi.Config{APIKey: "test_0000000000000000000000000000000000"})
		require.NoError(t, err)

		assert.NotNil(t, client.Payments())
		assert.NotNil(t, client.Orders())
		assert.NotNil(t, client.OrderLines())
		assert.NotNil(t, client.Refunds())
		assert.NotNil(t, client.Shipments())
		assert.NotNil(t, client.Customers())
		assert.NotNil(t, client.Subscriptions())
		assert.NotNil(t, client.Chargebacks())
		assert.NotNil(t, client.Methods())
	})
}
