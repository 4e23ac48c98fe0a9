package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/paygate-io/payapi/internal/constants"
	"github.com/paygate-io/payapi/internal/http"
	"github.com/paygate-io/payapi/pkg/payapi"
)

// ops is the generic operation engine behind every resource client. A
// descriptor supplies the per-kind metadata (path segment, id prefix, parent
// kind, supported operations); the engine supplies uniform create/get/list/
// update/delete behavior on top of the transport.
//
// An ops value is immutable. bind derives a copy with a parent id attached;
// nothing is mutated between calls, so concurrent calls through one resource
// client with different parent ids cannot interfere with each other's path
// composition.
type ops[T any] struct {
	httpClient *http.Client
	desc       *payapi.Descriptor
	parentID   string
}

func newOps[T any](httpClient *http.Client, desc *payapi.Descriptor) ops[T] {
	return ops[T]{httpClient: httpClient, desc: desc}
}

// bind returns a copy with the parent id attached as the fallback for calls
// that do not carry one explicitly.
func (o ops[T]) bind(parentID string) ops[T] {
	o.parentID = parentID

	return o
}

// resolveParent resolves the parent id for a single call. Precedence: the id
// explicit in the call > the id bound on this instance > missing. Nested kinds
// fail fast when no valid parent id can be resolved.
func (o ops[T]) resolveParent(explicit string) (string, error) {
	if o.desc.Parent == nil {
		return "", nil
	}

	parentID := explicit
	if parentID == "" {
		parentID = o.parentID
	}

	if parentID == "" {
		return "", &payapi.RequestError{
			Message: fmt.Sprintf("missing %s id: %s requests are nested under %s",
				o.desc.Parent.Name, o.desc.Name, o.desc.Parent.Segment),
			Field: o.desc.Parent.Name + "Id",
		}
	}

	err := o.desc.Parent.ValidateID(parentID)
	if err != nil {
		return "", err
	}

	return parentID, nil
}

// collectionPath composes the endpoint path for the kind, interpolating the
// parent segment and id for nested kinds.
func (o ops[T]) collectionPath(parentID string) string {
	if o.desc.Parent != nil {
		return fmt.Sprintf("%s/%s/%s/%s",
			constants.APIVersionPath, o.desc.Parent.Segment, parentID, o.desc.Segment)
	}

	return constants.APIVersionPath + "/" + o.desc.Segment
}

func (o ops[T]) itemPath(parentID, id string) string {
	return o.collectionPath(parentID) + "/" + id
}

// create issues one POST and hydrates the response.
func (o ops[T]) create(ctx context.Context, explicitParent string, body interface{}) (*T, error) {
	if err := o.desc.Allows(payapi.OpCreate); err != nil {
		return nil, err
	}

	parentID, err := o.resolveParent(explicitParent)
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Post(ctx, o.collectionPath(parentID), body)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", o.desc.Name, err)
	}

	return payapi.Hydrate[T](resp.Body)
}

// get issues one GET for a single entity and hydrates the response.
func (o ops[T]) get(ctx context.Context, explicitParent, id string, query url.Values) (*T, error) {
	if err := o.desc.Allows(payapi.OpGet); err != nil {
		return nil, err
	}

	parentID, err := o.resolveParent(explicitParent)
	if err != nil {
		return nil, err
	}

	if err := o.desc.ValidateID(id); err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Get(ctx, o.itemPath(parentID, id), query)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", o.desc.Name, err)
	}

	return payapi.Hydrate[T](resp.Body)
}

// list issues one GET for a page of entities. The returned page follows its
// cursor links through fetchPage.
func (o ops[T]) list(ctx context.Context, opts *payapi.ListOptions) (*payapi.Page[T], error) {
	if err := o.desc.Allows(payapi.OpList); err != nil {
		return nil, err
	}

	parentID, err := o.resolveParent(opts.GetParentID())
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Get(ctx, o.collectionPath(parentID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", o.desc.Segment, err)
	}

	return payapi.NewPage[T](resp.Body, o.desc.Segment, o.fetchPage)
}

// fetchPage retrieves the page at an absolute cursor link. Cursor links carry
// the original filters, so navigation never re-specifies them.
func (o ops[T]) fetchPage(ctx context.Context, href string) (*payapi.Page[T], error) {
	resp, err := o.httpClient.Get(ctx, href, nil)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", o.desc.Segment, err)
	}

	return payapi.NewPage[T](resp.Body, o.desc.Segment, o.fetchPage)
}

// update issues one PATCH for a single entity and hydrates the response.
func (o ops[T]) update(ctx context.Context, explicitParent, id string, body interface{}) (*T, error) {
	if err := o.desc.Allows(payapi.OpUpdate); err != nil {
		return nil, err
	}

	parentID, err := o.resolveParent(explicitParent)
	if err != nil {
		return nil, err
	}

	if err := o.desc.ValidateID(id); err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Patch(ctx, o.itemPath(parentID, id), body)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", o.desc.Name, err)
	}

	return payapi.Hydrate[T](resp.Body)
}

// del issues one DELETE for a single entity. Success is nil, including for an
// empty success body; failure is always an error.
func (o ops[T]) del(ctx context.Context, explicitParent, id string, body interface{}) error {
	if err := o.desc.Allows(payapi.OpDelete); err != nil {
		return err
	}

	parentID, err := o.resolveParent(explicitParent)
	if err != nil {
		return err
	}

	if err := o.desc.ValidateID(id); err != nil {
		return err
	}

	_, err = o.httpClient.Delete(ctx, o.itemPath(parentID, id), body)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", o.desc.Name, err)
	}

	return nil
}

// updateCollection issues one PATCH against the kind's collection under its
// parent. Used by kinds whose update endpoint addresses the collection (order
// lines); the response hydrates as the parent-level entity the API returns.
func (o ops[T]) updateCollection(ctx context.Context, explicitParent string, body interface{}) (*T, error) {
	if err := o.desc.Allows(payapi.OpUpdate); err != nil {
		return nil, err
	}

	parentID, err := o.resolveParent(explicitParent)
	if err != nil {
		return nil, err
	}

	resp, err := o.httpClient.Patch(ctx, o.collectionPath(parentID), body)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", o.desc.Segment, err)
	}

	return payapi.Hydrate[T](resp.Body)
}

// deleteCollection issues one DELETE against the kind's collection under its
// parent, with a body selecting the members.
func (o ops[T]) deleteCollection(ctx context.Context, explicitParent string, body interface{}) error {
	if err := o.desc.Allows(payapi.OpDelete); err != nil {
		return err
	}

	parentID, err := o.resolveParent(explicitParent)
	if err != nil {
		return err
	}

	_, err = o.httpClient.Delete(ctx, o.collectionPath(parentID), body)
	if err != nil {
		return fmt.Errorf("canceling %s: %w", o.desc.Segment, err)
	}

	return nil
}
