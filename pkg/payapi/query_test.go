package payapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListOptions_ToValues(t *testing.T) {
	opts := NewListOptions().
		WithFrom("tr_8WhJKGmgBy").
		WithLimit(25).
		WithSort("desc").
		WithEmbed("payments", "refunds").
		WithFilter("status", "paid", "open")

	values := opts.ToValues()

	assert.Equal(t, "tr_8WhJKGmgBy", values.Get("from"))
	assert.Equal(t, "25", values.Get("limit"))
	assert.Equal(t, "desc", values.Get("sort"))

	// Array-valued parameters serialize as repeated keys, never comma-joined.
	assert.Equal(t, []string{"payments", "refunds"}, values["embed"])
	assert.Equal(t, []string{"paid", "open"}, values["status"])
}

func TestListOptions_ToValues_Encoded(t *testing.T) {
	values := NewListOptions().WithEmbed("payments", "refunds").ToValues()

	assert.Equal(t, "embed=payments&embed=refunds", values.Encode())
}

func TestListOptions_ToValues_ZeroValuesOmitted(t *testing.T) {
	values := NewListOptions().ToValues()
	assert.Empty(t, values.Encode())

	var nilOpts *ListOptions

	assert.Empty(t, nilOpts.ToValues().Encode())
	assert.Empty(t, nilOpts.GetParentID())
}

func TestOptions_ToValues(t *testing.T) {
	opts := &Options{
		Embed:    []string{"refunds", "chargebacks"},
		Include:  []string{"details.qrCode"},
		Testmode: true,
	}

	values := opts.ToValues()

	assert.Equal(t, []string{"refunds", "chargebacks"}, values["embed"])
	assert.Equal(t, "details.qrCode", values.Get("include"))
	assert.Equal(t, "true", values.Get("testmode"))

	var nilOpts *Options

	assert.Empty(t, nilOpts.ToValues().Encode())
}
