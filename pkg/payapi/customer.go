package payapi

// Customer represents a customer.
type Customer struct {
	Resource

	Name     string   `json:"name,omitempty"     yaml:"name,omitempty"`
	Email    string   `json:"email,omitempty"    yaml:"email,omitempty"`
	Locale   string   `json:"locale,omitempty"   yaml:"locale,omitempty"`
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// CustomerCreateRequest represents a request to create a customer.
type CustomerCreateRequest struct {
	Name     string   `json:"name,omitempty"     yaml:"name,omitempty"`
	Email    string   `json:"email,omitempty"    yaml:"email,omitempty"`
	Locale   string   `json:"locale,omitempty"   yaml:"locale,omitempty"`
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// CustomerUpdateRequest represents a request to update a customer.
type CustomerUpdateRequest struct {
	Name     string   `json:"name,omitempty"     yaml:"name,omitempty"`
	Email    string   `json:"email,omitempty"    yaml:"email,omitempty"`
	Locale   string   `json:"locale,omitempty"   yaml:"locale,omitempty"`
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
