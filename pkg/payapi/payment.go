package payapi

import "time"

// Payment represents a single payment.
type Payment struct {
	Resource

	Status           string     `json:"status,omitempty"           yaml:"status,omitempty"`
	Description      string     `json:"description,omitempty"      yaml:"description,omitempty"`
	Method           string     `json:"method,omitempty"           yaml:"method,omitempty"`
	Amount           *Amount    `json:"amount,omitempty"           yaml:"amount,omitempty"`
	AmountRefunded   *Amount    `json:"amountRefunded,omitempty"   yaml:"amountRefunded,omitempty"`
	AmountRemaining  *Amount    `json:"amountRemaining,omitempty"  yaml:"amountRemaining,omitempty"`
	SettlementAmount *Amount    `json:"settlementAmount,omitempty" yaml:"settlementAmount,omitempty"`
	RedirectURL      string     `json:"redirectUrl,omitempty"      yaml:"redirectUrl,omitempty"`
	WebhookURL       string     `json:"webhookUrl,omitempty"       yaml:"webhookUrl,omitempty"`
	CustomerID       string     `json:"customerId,omitempty"       yaml:"customerId,omitempty"`
	OrderID          string     `json:"orderId,omitempty"          yaml:"orderId,omitempty"`
	Metadata         Metadata   `json:"metadata,omitempty"         yaml:"metadata,omitempty"`
	PaidAt           *time.Time `json:"paidAt,omitempty"           yaml:"paidAt,omitempty"`
	CanceledAt       *time.Time `json:"canceledAt,omitempty"       yaml:"canceledAt,omitempty"`
	ExpiresAt        *time.Time `json:"expiresAt,omitempty"        yaml:"expiresAt,omitempty"`
}

// IsPaid reports whether the payment has been paid.
func (p *Payment) IsPaid() bool {
	return p.PaidAt != nil
}

// IsOpen reports whether the payment is still open for completion.
func (p *Payment) IsOpen() bool {
	return p.Status == "open"
}

// CheckoutURL returns the hosted checkout link, if the payment carries one.
func (p *Payment) CheckoutURL() string {
	if link, ok := p.Links["checkout"]; ok {
		return link.Href
	}

	return ""
}

// PaymentCreateRequest represents a request to create a payment.
type PaymentCreateRequest struct {
	Amount      Amount   `json:"amount"                yaml:"amount"`
	Description string   `json:"description"           yaml:"description"`
	RedirectURL string   `json:"redirectUrl,omitempty" yaml:"redirectUrl,omitempty"`
	WebhookURL  string   `json:"webhookUrl,omitempty"  yaml:"webhookUrl,omitempty"`
	Method      string   `json:"method,omitempty"      yaml:"method,omitempty"`
	CustomerID  string   `json:"customerId,omitempty"  yaml:"customerId,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}

// PaymentUpdateRequest represents a request to update a payment.
type PaymentUpdateRequest struct {
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	RedirectURL string   `json:"redirectUrl,omitempty" yaml:"redirectUrl,omitempty"`
	WebhookURL  string   `json:"webhookUrl,omitempty"  yaml:"webhookUrl,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}
