package payapi

import (
	"context"
	"encoding/json"
	"fmt"
)

// PageLinks represents the _links object of a list envelope.
type PageLinks struct {
	Self          *Link `json:"self,omitempty"          yaml:"self,omitempty"`
	Previous      *Link `json:"previous,omitempty"      yaml:"previous,omitempty"`
	Next          *Link `json:"next,omitempty"          yaml:"next,omitempty"`
	Documentation *Link `json:"documentation,omitempty" yaml:"documentation,omitempty"`
}

// PageFetcher fetches the page at an absolute cursor link.
type PageFetcher[T any] func(ctx context.Context, href string) (*Page[T], error)

// Page represents one page of a list result. Items preserve the API response
// order. Following a cursor returns a new Page; a Page is never mutated.
type Page[T any] struct {
	Items []T
	// Count is the number of items on this page as reported by the API.
	Count int
	Links PageLinks

	fetch PageFetcher[T]
}

type listEnvelope struct {
	Count    int                        `json:"count"`
	Embedded map[string]json.RawMessage `json:"_embedded"`
	Links    PageLinks                  `json:"_links"`
}

// NewPage decodes a list envelope into a Page. The items live under the
// embedded key named after the resource segment; a response missing that key
// is a protocol fault, not an empty list.
func NewPage[T any](body []byte, embeddedKey string, fetch PageFetcher[T]) (*Page[T], error) {
	var envelope listEnvelope

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("decoding list envelope: %w", err)
	}

	raw, ok := envelope.Embedded[embeddedKey]
	if !ok {
		return nil, fmt.Errorf("%w: no embedded %q in list response", ErrMalformedResponse, embeddedKey)
	}

	items, err := HydrateSlice[T](raw)
	if err != nil {
		return nil, err
	}

	return &Page[T]{
		Items: items,
		Count: envelope.Count,
		Links: envelope.Links,
		fetch: fetch,
	}, nil
}

// HasNext reports whether a next cursor is present.
func (p *Page[T]) HasNext() bool {
	return p.Links.Next != nil && p.Links.Next.Href != ""
}

// HasPrevious reports whether a previous cursor is present.
func (p *Page[T]) HasPrevious() bool {
	return p.Links.Previous != nil && p.Links.Previous.Href != ""
}

// NextPage fetches the page at the next cursor with one request. Reaching the
// end of the list is a normal terminal condition: when no next cursor is
// present, NextPage returns (nil, nil).
func (p *Page[T]) NextPage(ctx context.Context) (*Page[T], error) {
	if !p.HasNext() {
		return nil, nil
	}

	return p.fetch(ctx, p.Links.Next.Href)
}

// PreviousPage fetches the page at the previous cursor with one request, or
// returns (nil, nil) when no previous cursor is present.
func (p *Page[T]) PreviousPage(ctx context.Context) (*Page[T], error) {
	if !p.HasPrevious() {
		return nil, nil
	}

	return p.fetch(ctx, p.Links.Previous.Href)
}

// PageIterator walks a list result item by item, following next cursors as
// pages are exhausted.
type PageIterator[T any] struct {
	page  *Page[T]
	index int
	err   error
}

// NewPageIterator creates an iterator starting at the given page.
func NewPageIterator[T any](page *Page[T]) *PageIterator[T] {
	return &PageIterator[T]{page: page}
}

// HasNext reports whether another item is available without fetching.
func (it *PageIterator[T]) HasNext() bool {
	if it.err != nil || it.page == nil {
		return false
	}

	return it.index < len(it.page.Items) || it.page.HasNext()
}

// Next returns the next item, fetching the next page when the current one is
// exhausted.
func (it *PageIterator[T]) Next(ctx context.Context) (T, error) {
	var zero T

	if it.err != nil {
		return zero, it.err
	}

	for it.page != nil && it.index >= len(it.page.Items) {
		next, err := it.page.NextPage(ctx)
		if err != nil {
			it.err = err

			return zero, err
		}

		it.page = next
		it.index = 0
	}

	if it.page == nil || it.index >= len(it.page.Items) {
		it.err = ErrNoMoreItems

		return zero, it.err
	}

	item := it.page.Items[it.index]
	it.index++

	return item, nil
}

// All collects every remaining item across all pages.
func (it *PageIterator[T]) All(ctx context.Context) ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach applies fn to every remaining item across all pages, stopping at the
// first error.
func (it *PageIterator[T]) ForEach(ctx context.Context, fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next(ctx)
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}
