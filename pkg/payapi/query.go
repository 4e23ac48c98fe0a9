package payapi

import (
	"net/url"
	"strconv"
)

// ListOptions represents query parameters for list requests.
type ListOptions struct {
	// From is the id of the first object to return (cursor).
	From string
	// Limit is the maximum number of objects per page.
	Limit int
	// Sort orders the result set ("asc" or "desc").
	Sort string
	// Embed and Include request related sub-resources in the response.
	Embed   []string
	Include []string
	// Filters are resource-specific filter parameters. Multi-valued filters
	// serialize as repeated keys, never comma-joined.
	Filters map[string][]string
	// ParentID identifies the parent resource for nested kinds, equivalent to
	// Options.ParentID on the scalar operations.
	ParentID string
	Testmode bool
}

// NewListOptions creates a new ListOptions with initialized maps.
func NewListOptions() *ListOptions {
	return &ListOptions{
		Filters: make(map[string][]string),
	}
}

// WithFrom sets the pagination cursor.
func (o *ListOptions) WithFrom(from string) *ListOptions {
	o.From = from

	return o
}

// WithLimit sets the page size.
func (o *ListOptions) WithLimit(limit int) *ListOptions {
	o.Limit = limit

	return o
}

// WithSort sets the sort order.
func (o *ListOptions) WithSort(sort string) *ListOptions {
	o.Sort = sort

	return o
}

// WithEmbed appends embed keys.
func (o *ListOptions) WithEmbed(keys ...string) *ListOptions {
	o.Embed = append(o.Embed, keys...)

	return o
}

// WithInclude appends include keys.
func (o *ListOptions) WithInclude(keys ...string) *ListOptions {
	o.Include = append(o.Include, keys...)

	return o
}

// WithFilter appends values for a filter key.
func (o *ListOptions) WithFilter(key string, values ...string) *ListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string][]string)
	}

	o.Filters[key] = append(o.Filters[key], values...)

	return o
}

// WithParentID sets the parent resource id for nested kinds.
func (o *ListOptions) WithParentID(id string) *ListOptions {
	o.ParentID = id

	return o
}

// ToValues converts the options to url.Values. Array-valued parameters keep
// url.Values' repeated-key serialization.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.From != "" {
		values.Set("from", o.From)
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.Sort != "" {
		values.Set("sort", o.Sort)
	}

	for _, key := range o.Embed {
		values.Add("embed", key)
	}

	for _, key := range o.Include {
		values.Add("include", key)
	}

	for key, filterValues := range o.Filters {
		for _, value := range filterValues {
			values.Add(key, value)
		}
	}

	if o.Testmode {
		values.Set("testmode", "true")
	}

	return values
}

// GetParentID returns the parent id, tolerating a nil receiver.
func (o *ListOptions) GetParentID() string {
	if o == nil {
		return ""
	}

	return o.ParentID
}

// ToValues converts scalar-call options to url.Values.
func (o *Options) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	for _, key := range o.Embed {
		values.Add("embed", key)
	}

	for _, key := range o.Include {
		values.Add("include", key)
	}

	if o.Testmode {
		values.Set("testmode", "true")
	}

	return values
}
