package client

import (
	"context"

	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

// Shipments cannot be canceled once created; OpDelete is deliberately absent,
// so Cancel fails locally without a network call.
var shipmentsDescriptor = &payapi.Descriptor{
	Name:    "shipment",
	Segment: "shipments",
	Prefix:  "shp_",
	Parent:  ordersDescriptor,
	Ops:     payapi.Ops(payapi.OpCreate, payapi.OpGet, payapi.OpList, payapi.OpUpdate),
}

// ShipmentsClient implements payapi.ShipmentsClient.
type ShipmentsClient struct {
	ops ops[payapi.Shipment]
}

// NewShipmentsClient creates a new shipments client.
func NewShipmentsClient(httpClient *http.Client) *ShipmentsClient {
	return &ShipmentsClient{ops: newOps[payapi.Shipment](httpClient, shipmentsDescriptor)}
}

// Bind implements payapi.ShipmentsClient.Bind.
func (c *ShipmentsClient) Bind(orderID string) payapi.ShipmentsClient {
	return &ShipmentsClient{ops: c.ops.bind(orderID)}
}

// Create implements payapi.ShipmentsClient.Create.
func (c *ShipmentsClient) Create(ctx context.Context, request *payapi.ShipmentCreateRequest, opts *payapi.Options) (*payapi.Shipment, error) {
	return c.ops.create(ctx, opts.GetParentID(), request)
}

// Get implements payapi.ShipmentsClient.Get.
func (c *ShipmentsClient) Get(ctx context.Context, id string, opts *payapi.Options) (*payapi.Shipment, error) {
	return c.ops.get(ctx, opts.GetParentID(), id, opts.ToValues())
}

// List implements payapi.ShipmentsClient.List.
func (c *ShipmentsClient) List(ctx context.Context, opts *payapi.ListOptions) (*payapi.Page[payapi.Shipment], error) {
	return c.ops.list(ctx, opts)
}

// Update implements payapi.ShipmentsClient.Update.
func (c *ShipmentsClient) Update(ctx context.Context, id string, request *payapi.ShipmentUpdateRequest, opts *payapi.Options) (*payapi.Shipment, error) {
	return c.ops.update(ctx, opts.GetParentID(), id, request)
}

// Cancel implements payapi.ShipmentsClient.Cancel. Shipments do not support
// cancellation; this always fails with a request error.
func (c *ShipmentsClient) Cancel(ctx context.Context, id string, opts *payapi.Options) error {
	return c.ops.del(ctx, opts.GetParentID(), id, nil)
}
