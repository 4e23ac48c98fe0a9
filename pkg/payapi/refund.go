package payapi

// Refund represents a refund of a payment.
type Refund struct {
	Resource

	Status           string   `json:"status,omitempty"           yaml:"status,omitempty"`
	Description      string   `json:"description,omitempty"      yaml:"description,omitempty"`
	Amount           *Amount  `json:"amount,omitempty"           yaml:"amount,omitempty"`
	SettlementAmount *Amount  `json:"settlementAmount,omitempty" yaml:"settlementAmount,omitempty"`
	PaymentID        string   `json:"paymentId,omitempty"        yaml:"paymentId,omitempty"`
	OrderID          string   `json:"orderId,omitempty"          yaml:"orderId,omitempty"`
	Metadata         Metadata `json:"metadata,omitempty"         yaml:"metadata,omitempty"`
}

// RefundCreateRequest represents a request to refund a payment.
type RefundCreateRequest struct {
	Amount      Amount   `json:"amount"                yaml:"amount"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}
