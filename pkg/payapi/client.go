package payapi

import (
	"context"
	"time"
)

// Client provides access to all resource-specific clients.
type Client interface {
	Payments() PaymentsClient
	Orders() OrdersClient
	OrderLines() OrderLinesClient
	Refunds() RefundsClient
	Shipments() ShipmentsClient
	Customers() CustomersClient
	Subscriptions() SubscriptionsClient
	Chargebacks() ChargebacksClient
	Methods() MethodsClient
}

// PaymentsClient accesses the payments resource.
type PaymentsClient interface {
	Create(ctx context.Context, request *PaymentCreateRequest) (*Payment, error)
	Get(ctx context.Context, id string, opts *Options) (*Payment, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Payment], error)
	Update(ctx context.Context, id string, request *PaymentUpdateRequest) (*Payment, error)
	// Cancel cancels a payment that is still cancelable. Delete is an alias
	// preserved for callers of the historical name; both perform the same
	// operation.
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// OrdersClient accesses the orders resource.
type OrdersClient interface {
	Create(ctx context.Context, request *OrderCreateRequest) (*Order, error)
	Get(ctx context.Context, id string, opts *Options) (*Order, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Order], error)
	Update(ctx context.Context, id string, request *OrderUpdateRequest) (*Order, error)
	Cancel(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// OrderLinesClient accesses the order lines of an order. Order lines are
// addressed through their order: both operations take the order id and act on
// the order's lines collection, returning the updated order.
type OrderLinesClient interface {
	Update(ctx context.Context, orderID string, request *OrderLinesUpdateRequest) (*Order, error)
	Cancel(ctx context.Context, orderID string, request *OrderLinesCancelRequest) error
}

// RefundsClient accesses refunds, nested under payments. The payment id comes
// from the per-call options, or from a client previously derived with Bind.
type RefundsClient interface {
	// Bind returns a derived client with the payment id bound for calls that
	// omit it. The receiver is not modified.
	Bind(paymentID string) RefundsClient
	Create(ctx context.Context, request *RefundCreateRequest, opts *Options) (*Refund, error)
	Get(ctx context.Context, id string, opts *Options) (*Refund, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Refund], error)
	Cancel(ctx context.Context, id string, opts *Options) error
}

// ShipmentsClient accesses shipments, nested under orders. Shipments cannot be
// canceled; Cancel always fails without a network call.
type ShipmentsClient interface {
	Bind(orderID string) ShipmentsClient
	Create(ctx context.Context, request *ShipmentCreateRequest, opts *Options) (*Shipment, error)
	Get(ctx context.Context, id string, opts *Options) (*Shipment, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Shipment], error)
	Update(ctx context.Context, id string, request *ShipmentUpdateRequest, opts *Options) (*Shipment, error)
	Cancel(ctx context.Context, id string, opts *Options) error
}

// CustomersClient accesses the customers resource.
type CustomersClient interface {
	Create(ctx context.Context, request *CustomerCreateRequest) (*Customer, error)
	Get(ctx context.Context, id string, opts *Options) (*Customer, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Customer], error)
	Update(ctx context.Context, id string, request *CustomerUpdateRequest) (*Customer, error)
	Delete(ctx context.Context, id string) error
}

// SubscriptionsClient accesses subscriptions, nested under customers.
type SubscriptionsClient interface {
	Bind(customerID string) SubscriptionsClient
	Create(ctx context.Context, request *SubscriptionCreateRequest, opts *Options) (*Subscription, error)
	Get(ctx context.Context, id string, opts *Options) (*Subscription, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Subscription], error)
	Update(ctx context.Context, id string, request *SubscriptionUpdateRequest, opts *Options) (*Subscription, error)
	Cancel(ctx context.Context, id string, opts *Options) error
}

// ChargebacksClient accesses chargebacks, nested under payments. Chargebacks
// are read-only.
type ChargebacksClient interface {
	Bind(paymentID string) ChargebacksClient
	Get(ctx context.Context, id string, opts *Options) (*Chargeback, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Chargeback], error)
}

// MethodsClient accesses the payment methods resource. Methods are read-only.
type MethodsClient interface {
	Get(ctx context.Context, id string, opts *Options) (*Method, error)
	List(ctx context.Context, opts *ListOptions) (*Page[Method], error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a payapi.Client.
//
// APIKey is the only required field. Keys are environment-scoped: test keys
// start with "test_", live keys with "live_". Per-request timeouts should be
// controlled via the context passed to client methods; RetryMax and the wait
// bounds tune transport-level retry of transient failures (the resource layer
// itself never retries).
type Config struct {
	// APIKey is the bearer key used to authenticate every request.
	APIKey string

	// APIEndpoint overrides the default API base URL. Mainly useful for tests
	// and staging environments.
	APIEndpoint string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// RetryMax is the maximum number of transport-level retries for transient
	// failures (>=500, 429, connection errors). 0 disables retrying.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// IdempotencyKeyFunc generates the Idempotency-Key header value for
	// mutating requests. When nil, a random UUID is used per request.
	IdempotencyKeyFunc func() string
}
