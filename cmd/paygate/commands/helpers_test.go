package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paygate-io/payapi/pkg/payapi"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "10.00 EUR", formatAmount(&payapi.Amount{Currency: "EUR", Value: "10.00"}))
	assert.Equal(t, NotAvailable, formatAmount(nil))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	assert.Equal(t, "2026-03-14T09:26:53Z", formatTime(&ts))
	assert.Equal(t, NotAvailable, formatTime(nil))
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "test_***jNVW", maskKey("test_dHar4XY7LxsDOtmnkVtjNVW"))
	assert.Equal(t, "***", maskKey("short"))
}

func TestFlatten(t *testing.T) {
	keyvals := flatten(map[string]interface{}{"method": "GET"})

	assert.Equal(t, []interface{}{"method", "GET"}, keyvals)
}
