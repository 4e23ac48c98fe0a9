package client

import (
	"github.com/paygate-io/payapi/internal/constants"
	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

// Client implements the payapi.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// Resource clients
	payments      payapi.PaymentsClient
	orders        payapi.OrdersClient
	orderLines    payapi.OrderLinesClient
	refunds       payapi.RefundsClient
	shipments     payapi.ShipmentsClient
	customers     payapi.CustomersClient
	subscriptions payapi.SubscriptionsClient
	chargebacks   payapi.ChargebacksClient
	methods       payapi.MethodsClient
}

// New creates a new API client from the given config. The config must carry
// an API key; endpoint normalization and key validation are the caller's
// responsibility (see pkg/payclient).
func New(config *payapi.Config) (*Client, error) {
	if config == nil {
		return nil, payapi.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, payapi.ErrAPIKeyRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	httpClient := http.NewClient(endpoint, config.APIKey, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    endpoint,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpOptions builds transport options from config.
func httpOptions(config *payapi.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.IdempotencyKeyFunc != nil {
		opts = append(opts, http.WithIdempotencyKeyFunc(config.IdempotencyKeyFunc))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.payments = NewPaymentsClient(c.httpClient)
	c.orders = NewOrdersClient(c.httpClient)
	c.orderLines = NewOrderLinesClient(c.httpClient)
	c.refunds = NewRefundsClient(c.httpClient)
	c.shipments = NewShipmentsClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.subscriptions = NewSubscriptionsClient(c.httpClient)
	c.chargebacks = NewChargebacksClient(c.httpClient)
	c.methods = NewMethodsClient(c.httpClient)
}

// Payments implements payapi.Client.Payments.
func (c *Client) Payments() payapi.PaymentsClient {
	return c.payments
}

// Orders implements payapi.Client.Orders.
func (c *Client) Orders() payapi.OrdersClient {
	return c.orders
}

// OrderLines implements payapi.Client.OrderLines.
func (c *Client) OrderLines() payapi.OrderLinesClient {
	return c.orderLines
}

// Refunds implements payapi.Client.Refunds.
func (c *Client) Refunds() payapi.RefundsClient {
	return c.refunds
}

// Shipments implements payapi.Client.Shipments.
func (c *Client) Shipments() payapi.ShipmentsClient {
	return c.shipments
}

// Customers implements payapi.Client.Customers.
func (c *Client) Customers() payapi.CustomersClient {
	return c.customers
}

// Subscriptions implements payapi.Client.Subscriptions.
func (c *Client) Subscriptions() payapi.SubscriptionsClient {
	return c.subscriptions
}

// Chargebacks implements payapi.Client.Chargebacks.
func (c *Client) Chargebacks() payapi.ChargebacksClient {
	return c.chargebacks
}

// Methods implements payapi.Client.Methods.
func (c *Client) Methods() payapi.MethodsClient {
	return c.methods
}

// loggerAdapter adapts payapi.Logger to http.Logger.
type loggerAdapter struct {
	logger payapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
