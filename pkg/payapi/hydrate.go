package payapi

import (
	"encoding/json"
	"fmt"
)

// rawCarrier is implemented by entity types that capture their raw response
// fields. Resource implements it, so every entity embedding Resource does.
type rawCarrier interface {
	setRawFields(RawFields)
}

// Hydrate decodes a raw API object into the entity type T. The complete field
// set of the response, including fields unknown to T, is preserved on the
// embedded Resource and available through RawFields.
func Hydrate[T any](data []byte) (*T, error) {
	var entity T

	err := json.Unmarshal(data, &entity)
	if err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", entityName[T](), err)
	}

	if carrier, ok := any(&entity).(rawCarrier); ok {
		var fields RawFields
		if err := json.Unmarshal(data, &fields); err == nil {
			carrier.setRawFields(fields)
		}
	}

	return &entity, nil
}

// HydrateSlice decodes a raw array element-wise, preserving response order.
func HydrateSlice[T any](data []byte) ([]T, error) {
	var elements []json.RawMessage

	err := json.Unmarshal(data, &elements)
	if err != nil {
		return nil, fmt.Errorf("decoding %s array: %w", entityName[T](), err)
	}

	entities := make([]T, 0, len(elements))

	for _, element := range elements {
		entity, err := Hydrate[T](element)
		if err != nil {
			return nil, err
		}

		entities = append(entities, *entity)
	}

	return entities, nil
}

func entityName[T any]() string {
	var zero T

	return fmt.Sprintf("%T", zero)
}
