package client

import (
	"context"

	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

var ordersDescriptor = &payapi.Descriptor{
	Name:    "order",
	Segment: "orders",
	Prefix:  "ord_",
	Ops:     payapi.Ops(payapi.OpCreate, payapi.OpGet, payapi.OpList, payapi.OpUpdate, payapi.OpDelete),
}

// OrdersClient implements payapi.OrdersClient.
type OrdersClient struct {
	ops ops[payapi.Order]
}

// NewOrdersClient creates a new orders client.
func NewOrdersClient(httpClient *http.Client) *OrdersClient {
	return &OrdersClient{ops: newOps[payapi.Order](httpClient, ordersDescriptor)}
}

// Create implements payapi.OrdersClient.Create.
func (c *OrdersClient) Create(ctx context.Context, request *payapi.OrderCreateRequest) (*payapi.Order, error) {
	return c.ops.create(ctx, "", request)
}

// Get implements payapi.OrdersClient.Get.
func (c *OrdersClient) Get(ctx context.Context, id string, opts *payapi.Options) (*payapi.Order, error) {
	return c.ops.get(ctx, "", id, opts.ToValues())
}

// List implements payapi.OrdersClient.List.
func (c *OrdersClient) List(ctx context.Context, opts *payapi.ListOptions) (*payapi.Page[payapi.Order], error) {
	return c.ops.list(ctx, opts)
}

// Update implements payapi.OrdersClient.Update.
func (c *OrdersClient) Update(ctx context.Context, id string, request *payapi.OrderUpdateRequest) (*payapi.Order, error) {
	return c.ops.update(ctx, "", id, request)
}

// Cancel implements payapi.OrdersClient.Cancel.
func (c *OrdersClient) Cancel(ctx context.Context, id string) error {
	return c.ops.del(ctx, "", id, nil)
}

// Delete is the historical alias for Cancel; both perform the same operation.
func (c *OrdersClient) Delete(ctx context.Context, id string) error {
	return c.Cancel(ctx, id)
}
