package client

import (
	"context"

	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

var customersDescriptor = &payapi.Descriptor{
	Name:    "customer",
	Segment: "customers",
	Prefix:  "cst_",
	Ops:     payapi.Ops(payapi.OpCreate, payapi.OpGet, payapi.OpList, payapi.OpUpdate, payapi.OpDelete),
}

// CustomersClient implements payapi.CustomersClient.
type CustomersClient struct {
	ops ops[payapi.Customer]
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(httpClient *http.Client) *CustomersClient {
	return &CustomersClient{ops: newOps[payapi.Customer](httpClient, customersDescriptor)}
}

// Create implements payapi.CustomersClient.Create.
func (c *CustomersClient) Create(ctx context.Context, request *payapi.CustomerCreateRequest) (*payapi.Customer, error) {
	return c.ops.create(ctx, "", request)
}

// Get implements payapi.CustomersClient.Get.
func (c *CustomersClient) Get(ctx context.Context, id string, opts *payapi.Options) (*payapi.Customer, error) {
	return c.ops.get(ctx, "", id, opts.ToValues())
}

// List implements payapi.CustomersClient.List.
func (c *CustomersClient) List(ctx context.Context, opts *payapi.ListOptions) (*payapi.Page[payapi.Customer], error) {
	return c.ops.list(ctx, opts)
}

// Update implements payapi.CustomersClient.Update.
func (c *CustomersClient) Update(ctx context.Context, id string, request *payapi.CustomerUpdateRequest) (*payapi.Customer, error) {
	return c.ops.update(ctx, "", id, request)
}

// Delete implements payapi.CustomersClient.Delete.
func (c *CustomersClient) Delete(ctx context.Context, id string) error {
	return c.ops.del(ctx, "", id, nil)
}
