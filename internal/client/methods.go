package client

import (
	"context"

	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

// Method ids are well-known names ("ideal"), so the kind carries no id-prefix
// convention; ids are only required to be non-empty.
var methodsDescriptor = &payapi.Descriptor{
	Name:    "payment method",
	Segment: "methods",
	Ops:     payapi.Ops(payapi.OpGet, payapi.OpList),
}

// MethodsClient implements payapi.MethodsClient.
type MethodsClient struct {
	ops ops[payapi.Method]
}

// NewMethodsClient creates a new methods client.
func NewMethodsClient(httpClient *http.Client) *MethodsClient {
	return &MethodsClient{ops: newOps[payapi.Method](httpClient, methodsDescriptor)}
}

// Get implements payapi.MethodsClient.Get.
func (c *MethodsClient) Get(ctx context.Context, id string, opts *payapi.Options) (*payapi.Method, error) {
	return c.ops.get(ctx, "", id, opts.ToValues())
}

// List implements payapi.MethodsClient.List.
func (c *MethodsClient) List(ctx context.Context, opts *payapi.ListOptions) (*payapi.Page[payapi.Method], error) {
	return c.ops.list(ctx, opts)
}
