package client

import (
	"context"

	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

// Order line operations address the lines collection of an order and return
// the updated order, so the engine hydrates into payapi.Order.
var orderLinesDescriptor = &payapi.Descriptor{
	Name:    "order line",
	Segment: "lines",
	Prefix:  "odl_",
	Parent:  ordersDescriptor,
	Ops:     payapi.Ops(payapi.OpUpdate, payapi.OpDelete),
}

// OrderLinesClient implements payapi.OrderLinesClient.
type OrderLinesClient struct {
	ops ops[payapi.Order]
}

// NewOrderLinesClient creates a new order lines client.
func NewOrderLinesClient(httpClient *http.Client) *OrderLinesClient {
	return &OrderLinesClient{ops: newOps[payapi.Order](httpClient, orderLinesDescriptor)}
}

// Update implements payapi.OrderLinesClient.Update.
func (c *OrderLinesClient) Update(ctx context.Context, orderID string, request *payapi.OrderLinesUpdateRequest) (*payapi.Order, error) {
	return c.ops.updateCollection(ctx, orderID, request)
}

// Cancel implements payapi.OrderLinesClient.Cancel.
func (c *OrderLinesClient) Cancel(ctx context.Context, orderID string, request *payapi.OrderLinesCancelRequest) error {
	return c.ops.deleteCollection(ctx, orderID, request)
}
