package payapi

import "time"

// Subscription represents a recurring payment schedule for a customer.
type Subscription struct {
	Resource

	Status      string     `json:"status,omitempty"      yaml:"status,omitempty"`
	Amount      *Amount    `json:"amount,omitempty"      yaml:"amount,omitempty"`
	Times       int        `json:"times,omitempty"       yaml:"times,omitempty"`
	Interval    string     `json:"interval,omitempty"    yaml:"interval,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	CustomerID  string     `json:"customerId,omitempty"  yaml:"customerId,omitempty"`
	WebhookURL  string     `json:"webhookUrl,omitempty"  yaml:"webhookUrl,omitempty"`
	StartDate   string     `json:"startDate,omitempty"   yaml:"startDate,omitempty"`
	Metadata    Metadata   `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
	CanceledAt  *time.Time `json:"canceledAt,omitempty"  yaml:"canceledAt,omitempty"`
}

// SubscriptionCreateRequest represents a request to create a subscription.
type SubscriptionCreateRequest struct {
	Amount      Amount   `json:"amount"               yaml:"amount"`
	Interval    string   `json:"interval"             yaml:"interval"`
	Description string   `json:"description"          yaml:"description"`
	Times       int      `json:"times,omitempty"      yaml:"times,omitempty"`
	StartDate   string   `json:"startDate,omitempty"  yaml:"startDate,omitempty"`
	WebhookURL  string   `json:"webhookUrl,omitempty" yaml:"webhookUrl,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"   yaml:"metadata,omitempty"`
}

// SubscriptionUpdateRequest represents a request to update a subscription.
type SubscriptionUpdateRequest struct {
	Amount      *Amount  `json:"amount,omitempty"      yaml:"amount,omitempty"`
	Interval    string   `json:"interval,omitempty"    yaml:"interval,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Times       int      `json:"times,omitempty"       yaml:"times,omitempty"`
	StartDate   string   `json:"startDate,omitempty"   yaml:"startDate,omitempty"`
	WebhookURL  string   `json:"webhookUrl,omitempty"  yaml:"webhookUrl,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}
