package client

import (
	"context"

	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

var paymentsDescriptor = &payapi.Descriptor{
	Name:    "payment",
	Segment: "payments",
	Prefix:  "tr_",
	Ops:     payapi.Ops(payapi.OpCreate, payapi.OpGet, payapi.OpList, payapi.OpUpdate, payapi.OpDelete),
}

// PaymentsClient implements payapi.PaymentsClient.
type PaymentsClient struct {
	ops ops[payapi.Payment]
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(httpClient *http.Client) *PaymentsClient {
	return &PaymentsClient{ops: newOps[payapi.Payment](httpClient, paymentsDescriptor)}
}

// Create implements payapi.PaymentsClient.Create.
func (c *PaymentsClient) Create(ctx context.Context, request *payapi.PaymentCreateRequest) (*payapi.Payment, error) {
	return c.ops.create(ctx, "", request)
}

// Get implements payapi.PaymentsClient.Get.
func (c *PaymentsClient) Get(ctx context.Context, id string, opts *payapi.Options) (*payapi.Payment, error) {
	return c.ops.get(ctx, "", id, opts.ToValues())
}

// List implements payapi.PaymentsClient.List.
func (c *PaymentsClient) List(ctx context.Context, opts *payapi.ListOptions) (*payapi.Page[payapi.Payment], error) {
	return c.ops.list(ctx, opts)
}

// Update implements payapi.PaymentsClient.Update.
func (c *PaymentsClient) Update(ctx context.Context, id string, request *payapi.PaymentUpdateRequest) (*payapi.Payment, error) {
	return c.ops.update(ctx, "", id, request)
}

// Cancel implements payapi.PaymentsClient.Cancel.
func (c *PaymentsClient) Cancel(ctx context.Context, id string) error {
	return c.ops.del(ctx, "", id, nil)
}

// Delete is the historical alias for Cancel; both perform the same operation.
func (c *PaymentsClient) Delete(ctx context.Context, id string) error {
	return c.Cancel(ctx, id)
}
