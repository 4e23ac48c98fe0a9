package payapi

import (
	"encoding/json"
	"time"
)

// Resource is the base structure embedded by every API entity.
type Resource struct {
	Kind      string     `json:"resource,omitempty"  yaml:"resource,omitempty"`
	ID        string     `json:"id,omitempty"        yaml:"id,omitempty"`
	Mode      string     `json:"mode,omitempty"      yaml:"mode,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	Links     Links      `json:"_links,omitempty"    yaml:"-"`

	raw RawFields
}

// RawFields is the complete field set of the API object an entity was hydrated
// from, keyed by field name. It includes fields the entity type does not model.
type RawFields map[string]json.RawMessage

// RawFields returns the raw response fields captured during hydration, or nil
// if the entity was constructed locally.
func (r *Resource) RawFields() RawFields {
	return r.raw
}

func (r *Resource) setRawFields(fields RawFields) {
	r.raw = fields
}

// Links represents the _links object carried by resources.
type Links map[string]Link

// Link represents a single href in a _links object.
type Link struct {
	Href string `json:"href"           yaml:"href"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Amount represents a currency/value pair. Value is a string with the exact
// decimal representation the API expects (e.g. "10.00").
type Amount struct {
	Currency string `json:"currency" yaml:"currency"`
	Value    string `json:"value"    yaml:"value"`
}

// Address represents a postal address.
type Address struct {
	StreetAndNumber  string `json:"streetAndNumber,omitempty"  yaml:"streetAndNumber,omitempty"`
	StreetAdditional string `json:"streetAdditional,omitempty" yaml:"streetAdditional,omitempty"`
	PostalCode       string `json:"postalCode,omitempty"       yaml:"postalCode,omitempty"`
	City             string `json:"city,omitempty"             yaml:"city,omitempty"`
	Region           string `json:"region,omitempty"           yaml:"region,omitempty"`
	Country          string `json:"country,omitempty"          yaml:"country,omitempty"`
	GivenName        string `json:"givenName,omitempty"        yaml:"givenName,omitempty"`
	FamilyName       string `json:"familyName,omitempty"       yaml:"familyName,omitempty"`
	Email            string `json:"email,omitempty"            yaml:"email,omitempty"`
	Phone            string `json:"phone,omitempty"            yaml:"phone,omitempty"`
}

// Metadata is the free-form metadata object callers may attach to resources.
type Metadata map[string]interface{}

// Options carries per-call options shared by all operations.
//
// ParentID identifies the parent resource for nested kinds (for example the
// payment id when getting a refund). It is scoped to the single call it is
// passed to; concurrent calls with different parent ids do not interfere.
type Options struct {
	ParentID string
	Embed    []string
	Include  []string
	Testmode bool
}

// GetParentID returns the parent id, tolerating a nil receiver.
func (o *Options) GetParentID() string {
	if o == nil {
		return ""
	}

	return o.ParentID
}
