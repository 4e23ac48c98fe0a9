package client

import (
	"context"

	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

var refundsDescriptor = &payapi.Descriptor{
	Name:    "refund",
	Segment: "refunds",
	Prefix:  "re_",
	Parent:  paymentsDescriptor,
	Ops:     payapi.Ops(payapi.OpCreate, payapi.OpGet, payapi.OpList, payapi.OpDelete),
}

// RefundsClient implements payapi.RefundsClient.
type RefundsClient struct {
	ops ops[payapi.Refund]
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(httpClient *http.Client) *RefundsClient {
	return &RefundsClient{ops: newOps[payapi.Refund](httpClient, refundsDescriptor)}
}

// Bind implements payapi.RefundsClient.Bind.
func (c *RefundsClient) Bind(paymentID string) payapi.RefundsClient {
	return &RefundsClient{ops: c.ops.bind(paymentID)}
}

// Create implements payapi.RefundsClient.Create.
func (c *RefundsClient) Create(ctx context.Context, request *payapi.RefundCreateRequest, opts *payapi.Options) (*payapi.Refund, error) {
	return c.ops.create(ctx, opts.GetParentID(), request)
}

// Get implements payapi.RefundsClient.Get.
func (c *RefundsClient) Get(ctx context.Context, id string, opts *payapi.Options) (*payapi.Refund, error) {
	return c.ops.get(ctx, opts.GetParentID(), id, opts.ToValues())
}

// List implements payapi.RefundsClient.List.
func (c *RefundsClient) List(ctx context.Context, opts *payapi.ListOptions) (*payapi.Page[payapi.Refund], error) {
	return c.ops.list(ctx, opts)
}

// Cancel implements payapi.RefundsClient.Cancel.
func (c *RefundsClient) Cancel(ctx context.Context, id string, opts *payapi.Options) error {
	return c.ops.del(ctx, opts.GetParentID(), id, nil)
}
