package client

import (
	"context"

	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

// Chargebacks are created by the schemes, not by callers; only retrieval is
// wired.
var chargebacksDescriptor = &payapi.Descriptor{
	Name:    "chargeback",
	Segment: "chargebacks",
	Prefix:  "chb_",
	Parent:  paymentsDescriptor,
	Ops:     payapi.Ops(payapi.OpGet, payapi.OpList),
}

// ChargebacksClient implements payapi.ChargebacksClient.
type ChargebacksClient struct {
	ops ops[payapi.Chargeback]
}

// NewChargebacksClient creates a new chargebacks client.
func NewChargebacksClient(httpClient *http.Client) *ChargebacksClient {
	return &ChargebacksClient{ops: newOps[payapi.Chargeback](httpClient, chargebacksDescriptor)}
}

// Bind implements payapi.ChargebacksClient.Bind.
func (c *ChargebacksClient) Bind(paymentID string) payapi.ChargebacksClient {
	return &ChargebacksClient{ops: c.ops.bind(paymentID)}
}

// Get implements payapi.ChargebacksClient.Get.
func (c *ChargebacksClient) Get(ctx context.Context, id string, opts *payapi.Options) (*payapi.Chargeback, error) {
	return c.ops.get(ctx, opts.GetParentID(), id, opts.ToValues())
}

// List implements payapi.ChargebacksClient.List.
func (c *ChargebacksClient) List(ctx context.Context, opts *payapi.ListOptions) (*payapi.Page[payapi.Chargeback], error) {
	return c.ops.list(ctx, opts)
}
