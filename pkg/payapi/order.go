package payapi

import "time"

// Order represents an order with its lines.
type Order struct {
	Resource

	OrderNumber     string      `json:"orderNumber,omitempty"     yaml:"orderNumber,omitempty"`
	Status          string      `json:"status,omitempty"          yaml:"status,omitempty"`
	Amount          *Amount     `json:"amount,omitempty"          yaml:"amount,omitempty"`
	AmountCaptured  *Amount     `json:"amountCaptured,omitempty"  yaml:"amountCaptured,omitempty"`
	AmountRefunded  *Amount     `json:"amountRefunded,omitempty"  yaml:"amountRefunded,omitempty"`
	BillingAddress  *Address    `json:"billingAddress,omitempty"  yaml:"billingAddress,omitempty"`
	ShippingAddress *Address    `json:"shippingAddress,omitempty" yaml:"shippingAddress,omitempty"`
	Locale          string      `json:"locale,omitempty"          yaml:"locale,omitempty"`
	Method          string      `json:"method,omitempty"          yaml:"method,omitempty"`
	RedirectURL     string      `json:"redirectUrl,omitempty"     yaml:"redirectUrl,omitempty"`
	WebhookURL      string      `json:"webhookUrl,omitempty"      yaml:"webhookUrl,omitempty"`
	Metadata        Metadata    `json:"metadata,omitempty"        yaml:"metadata,omitempty"`
	Lines           []OrderLine `json:"lines,omitempty"           yaml:"lines,omitempty"`
	ExpiresAt       *time.Time  `json:"expiresAt,omitempty"       yaml:"expiresAt,omitempty"`
	PaidAt          *time.Time  `json:"paidAt,omitempty"          yaml:"paidAt,omitempty"`
	CompletedAt     *time.Time  `json:"completedAt,omitempty"     yaml:"completedAt,omitempty"`
}

// OrderLine represents one line of an order.
type OrderLine struct {
	Resource

	OrderID        string  `json:"orderId,omitempty"        yaml:"orderId,omitempty"`
	Name           string  `json:"name,omitempty"           yaml:"name,omitempty"`
	SKU            string  `json:"sku,omitempty"            yaml:"sku,omitempty"`
	Type           string  `json:"type,omitempty"           yaml:"type,omitempty"`
	Status         string  `json:"status,omitempty"         yaml:"status,omitempty"`
	Quantity       int     `json:"quantity,omitempty"       yaml:"quantity,omitempty"`
	UnitPrice      *Amount `json:"unitPrice,omitempty"      yaml:"unitPrice,omitempty"`
	DiscountAmount *Amount `json:"discountAmount,omitempty" yaml:"discountAmount,omitempty"`
	TotalAmount    *Amount `json:"totalAmount,omitempty"    yaml:"totalAmount,omitempty"`
	VATRate        string  `json:"vatRate,omitempty"        yaml:"vatRate,omitempty"`
	VATAmount      *Amount `json:"vatAmount,omitempty"      yaml:"vatAmount,omitempty"`
}

// OrderCreateRequest represents a request to create an order.
type OrderCreateRequest struct {
	Amount          Amount      `json:"amount"                    yaml:"amount"`
	OrderNumber     string      `json:"orderNumber"               yaml:"orderNumber"`
	Lines           []OrderLine `json:"lines"                     yaml:"lines"`
	BillingAddress  *Address    `json:"billingAddress,omitempty"  yaml:"billingAddress,omitempty"`
	ShippingAddress *Address    `json:"shippingAddress,omitempty" yaml:"shippingAddress,omitempty"`
	Locale          string      `json:"locale,omitempty"          yaml:"locale,omitempty"`
	Method          string      `json:"method,omitempty"          yaml:"method,omitempty"`
	RedirectURL     string      `json:"redirectUrl,omitempty"     yaml:"redirectUrl,omitempty"`
	WebhookURL      string      `json:"webhookUrl,omitempty"      yaml:"webhookUrl,omitempty"`
	Metadata        Metadata    `json:"metadata,omitempty"        yaml:"metadata,omitempty"`
}

// OrderUpdateRequest represents a request to update an order.
type OrderUpdateRequest struct {
	OrderNumber     string   `json:"orderNumber,omitempty"     yaml:"orderNumber,omitempty"`
	BillingAddress  *Address `json:"billingAddress,omitempty"  yaml:"billingAddress,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty" yaml:"shippingAddress,omitempty"`
	RedirectURL     string   `json:"redirectUrl,omitempty"     yaml:"redirectUrl,omitempty"`
	WebhookURL      string   `json:"webhookUrl,omitempty"      yaml:"webhookUrl,omitempty"`
}

// OrderLinesUpdateRequest represents a request to update the lines of an
// order. The response hydrates as the full updated order.
type OrderLinesUpdateRequest struct {
	Lines []OrderLine `json:"lines" yaml:"lines"`
}

// OrderLinesCancelRequest represents a request to cancel order lines. Lines
// may be canceled partially by giving a quantity below the ordered quantity.
type OrderLinesCancelRequest struct {
	Lines []OrderLineReference `json:"lines" yaml:"lines"`
}

// OrderLineReference identifies one order line and optionally a quantity.
type OrderLineReference struct {
	ID       string `json:"id"                 yaml:"id"`
	Quantity int    `json:"quantity,omitempty" yaml:"quantity,omitempty"`
}
