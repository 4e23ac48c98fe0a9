package payapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHydrate(t *testing.T) {
	body := `{
		"resource": "payment",
		"id": "tr_WDqYK6vllg",
		"mode": "test",
		"description": "Order #12345",
		"amount": {"currency": "EUR", "value": "10.00"},
		"applicationFee": {"amount": {"currency": "EUR", "value": "0.25"}},
		"_links": {
			"checkout": {"href": "https://www.paygate.io/checkout/select-method/WDqYK6vllg", "type": "text/html"}
		}
	}`

	payment, err := Hydrate[Payment]([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "tr_WDqYK6vllg", payment.ID)
	assert.Equal(t, "test", payment.Mode)
	assert.Equal(t, "10.00", payment.Amount.Value)
	assert.Equal(t, "https://www.paygate.io/checkout/select-method/WDqYK6vllg", payment.CheckoutURL())

	// Fields the type does not model stay reachable through RawFields.
	raw := payment.RawFields()
	require.Contains(t, raw, "applicationFee")
	assert.JSONEq(t, `{"amount": {"currency": "EUR", "value": "0.25"}}`, string(raw["applicationFee"]))
}

func TestHydrate_InvalidJSON(t *testing.T) {
	_, err := Hydrate[Payment]([]byte(`{"id": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}

func TestHydrateSlice_PreservesOrder(t *testing.T) {
	body := `[
		{"resource": "payment", "id": "tr_c"},
		{"resource": "payment", "id": "tr_a"},
		{"resource": "payment", "id": "tr_b"}
	]`

	payments, err := HydrateSlice[Payment]([]byte(body))
	require.NoError(t, err)
	require.Len(t, payments, 3)

	assert.Equal(t, "tr_c", payments[0].ID)
	assert.Equal(t, "tr_a", payments[1].ID)
	assert.Equal(t, "tr_b", payments[2].ID)
}

func TestHydrateSlice_Empty(t *testing.T) {
	payments, err := HydrateSlice[Payment]([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, payments)
}
