package payapi

// Method represents a payment method. Method ids are well-known names
// ("ideal", "creditcard") rather than prefixed identifiers.
type Method struct {
	Resource

	Description   string       `json:"description,omitempty"   yaml:"description,omitempty"`
	MinimumAmount *Amount      `json:"minimumAmount,omitempty" yaml:"minimumAmount,omitempty"`
	MaximumAmount *Amount      `json:"maximumAmount,omitempty" yaml:"maximumAmount,omitempty"`
	Image         *MethodImage `json:"image,omitempty"         yaml:"image,omitempty"`
	Status        string       `json:"status,omitempty"        yaml:"status,omitempty"`
}

// MethodImage represents the icon set of a payment method.
type MethodImage struct {
	Size1x string `json:"size1x,omitempty" yaml:"size1x,omitempty"`
	Size2x string `json:"size2x,omitempty" yaml:"size2x,omitempty"`
	SVG    string `json:"svg,omitempty"    yaml:"svg,omitempty"`
}
