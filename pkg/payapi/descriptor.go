package payapi

import (
	"fmt"
	"strings"
)

// Operation identifies one of the uniform resource operations.
type Operation uint8

// Uniform resource operations.
const (
	OpCreate Operation = iota
	OpGet
	OpList
	OpUpdate
	OpDelete
)

// String returns the operation's API name.
func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpGet:
		return "get"
	case OpList:
		return "list"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("operation(%d)", uint8(op))
	}
}

// OperationSet is the set of operations a resource kind supports.
type OperationSet uint8

// Ops builds an OperationSet from individual operations.
func Ops(operations ...Operation) OperationSet {
	var set OperationSet
	for _, op := range operations {
		set |= 1 << op
	}

	return set
}

// Has reports whether the set contains op.
func (s OperationSet) Has(op Operation) bool {
	return s&(1<<op) != 0
}

// Descriptor is the static metadata for one resource kind. Descriptors are
// defined once per kind and never mutated at runtime.
type Descriptor struct {
	// Name is the human-readable singular name used in diagnostics ("payment").
	Name string
	// Segment is the endpoint path segment ("payments"). It is also the
	// embedded key of list envelopes for this kind.
	Segment string
	// Prefix is the fixed literal id prefix ("tr_"). Empty means the kind has
	// no id-prefix convention and only non-empty ids are required.
	Prefix string
	// Parent is the descriptor of the parent kind for nested resources.
	Parent *Descriptor
	// Ops is the set of operations the kind supports.
	Ops OperationSet
}

// Allows returns nil when the kind supports op, and a RequestError naming the
// resource otherwise.
func (d *Descriptor) Allows(op Operation) error {
	if d.Ops.Has(op) {
		return nil
	}

	return &RequestError{
		Message: fmt.Sprintf("the method %s does not exist on the %s resource", op, d.Segment),
	}
}

// ValidateID checks an id against the kind's id-prefix convention.
func (d *Descriptor) ValidateID(id string) error {
	if id == "" {
		return &RequestError{
			Message: fmt.Sprintf("the %s id is missing", d.Name),
			Field:   "id",
		}
	}

	if d.Prefix != "" && !strings.HasPrefix(id, d.Prefix) {
		return &RequestError{
			Message: fmt.Sprintf("the %s id is invalid: %q does not start with %q", d.Name, id, d.Prefix),
			Field:   "id",
		}
	}

	return nil
}
