package payapi

import "time"

// Chargeback represents a chargeback raised against a payment. Chargebacks
// are created by the card schemes, never by the API caller; only retrieval is
// supported.
type Chargeback struct {
	Resource

	Amount           *Amount    `json:"amount,omitempty"           yaml:"amount,omitempty"`
	SettlementAmount *Amount    `json:"settlementAmount,omitempty" yaml:"settlementAmount,omitempty"`
	Reason           string     `json:"reason,omitempty"           yaml:"reason,omitempty"`
	PaymentID        string     `json:"paymentId,omitempty"        yaml:"paymentId,omitempty"`
	ReversedAt       *time.Time `json:"reversedAt,omitempty"       yaml:"reversedAt,omitempty"`
}
