package client

import (
	"context"

	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

var subscriptionsDescriptor = &payapi.Descriptor{
	Name:    "subscription",
	Segment: "subscriptions",
	Prefix:  "sub_",
	Parent:  customersDescriptor,
	Ops:     payapi.Ops(payapi.OpCreate, payapi.OpGet, payapi.OpList, payapi.OpUpdate, payapi.OpDelete),
}

// SubscriptionsClient implements payapi.SubscriptionsClient.
type SubscriptionsClient struct {
	ops ops[payapi.Subscription]
}

// NewSubscriptionsClient creates a new subscriptions client.
func NewSubscriptionsClient(httpClient *http.Client) *SubscriptionsClient {
	return &SubscriptionsClient{ops: newOps[payapi.Subscription](httpClient, subscriptionsDescriptor)}
}

// Bind implements payapi.SubscriptionsClient.Bind.
func (c *SubscriptionsClient) Bind(customerID string) payapi.SubscriptionsClient {
	return &SubscriptionsClient{ops: c.ops.bind(customerID)}
}

// Create implements payapi.SubscriptionsClient.Create.
func (c *SubscriptionsClient) Create(ctx context.Context, request *payapi.SubscriptionCreateRequest, opts *payapi.Options) (*payapi.Subscription, error) {
	return c.ops.create(ctx, opts.GetParentID(), request)
}

// Get implements payapi.SubscriptionsClient.Get.
func (c *SubscriptionsClient) Get(ctx context.Context, id string, opts *payapi.Options) (*payapi.Subscription, error) {
	return c.ops.get(ctx, opts.GetParentID(), id, opts.ToValues())
}

// List implements payapi.SubscriptionsClient.List.
func (c *SubscriptionsClient) List(ctx context.Context, opts *payapi.ListOptions) (*payapi.Page[payapi.Subscription], error) {
	return c.ops.list(ctx, opts)
}

// Update implements payapi.SubscriptionsClient.Update.
func (c *SubscriptionsClient) Update(ctx context.Context, id string, request *payapi.SubscriptionUpdateRequest, opts *payapi.Options) (*payapi.Subscription, error) {
	return c.ops.update(ctx, opts.GetParentID(), id, request)
}

// Cancel implements payapi.SubscriptionsClient.Cancel.
func (c *SubscriptionsClient) Cancel(ctx context.Context, id string, opts *payapi.Options) error {
	return c.ops.del(ctx, opts.GetParentID(), id, nil)
}
