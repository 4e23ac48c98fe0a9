package payapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationSet(t *testing.T) {
	set := Ops(OpGet, OpList)

	assert.True(t, set.Has(OpGet))
	assert.True(t, set.Has(OpList))
	assert.False(t, set.Has(OpCreate))
	assert.False(t, set.Has(OpUpdate))
	assert.False(t, set.Has(OpDelete))
}

func TestDescriptor_Allows(t *testing.T) {
	desc := &Descriptor{
		Name:    "shipment",
		Segment: "shipments",
		Prefix:  "shp_",
		Ops:     Ops(OpCreate, OpGet, OpList, OpUpdate),
	}

	require.NoError(t, desc.Allows(OpCreate))
	require.NoError(t, desc.Allows(OpUpdate))

	err := desc.Allows(OpDelete)
	require.Error(t, err)
	assert.True(t, IsRequestError(err))
	assert.Equal(t, "the method delete does not exist on the shipments resource", err.Error())
}

func TestDescriptor_ValidateID(t *testing.T) {
	desc := &Descriptor{Name: "payment", Segment: "payments", Prefix: "tr_"}

	tests := []struct {
		name    string
		id      string
		wantErr string
	}{
		{name: "valid", id: "tr_WDqYK6vllg"},
		{name: "missing", id: "", wantErr: "the payment id is missing"},
		{name: "wrong prefix", id: "ord_WDqYK6vllg", wantErr: `the payment id is invalid: "ord_WDqYK6vllg" does not start with "tr_"`},
		{name: "prefix only is accepted locally", id: "tr_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := desc.ValidateID(tt.id)

			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, IsRequestError(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestDescriptor_ValidateID_NoPrefixConvention(t *testing.T) {
	desc := &Descriptor{Name: "method", Segment: "methods"}

	require.NoError(t, desc.ValidateID("ideal"))
	require.Error(t, desc.ValidateID(""))
}
