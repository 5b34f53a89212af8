// Package app implements the request-processing pipeline: the action
// registry and router, the handler execution adapter, and response envelope
// construction. Domain packages register actions declaratively at startup;
// transports call Dispatch.
package app

import (
	"context"

	"github.com/cmsbridge/cmsbridge/internal/app/debug"
	"github.com/cmsbridge/cmsbridge/internal/app/schema"
	"github.com/cmsbridge/cmsbridge/internal/domain"
)

// Shape declares an action's response convention so the execution adapter
// can normalize handler results without per-domain special cases.
type Shape int

const (
	// ShapeGet returns a single entity, passed through the locale resolver.
	ShapeGet Shape = iota
	// ShapeList returns a collection plus a count.
	ShapeList
	// ShapeCreate returns the created entity.
	ShapeCreate
	// ShapeUpdate returns the updated entity.
	ShapeUpdate
	// ShapeDelete returns the deleted entity or a confirmation and is gated
	// behind an explicit confirmation argument.
	ShapeDelete
	// ShapeDuplicate returns the cloned entity. It mutates, but takes a
	// single identifier argument, so it is exempt from the
	// under-specified-input heuristic applied to create and update.
	ShapeDuplicate
)

// String returns the verb used in confirmations and error messages.
func (s Shape) String() string {
	switch s {
	case ShapeGet:
		return "get"
	case ShapeList:
		return "list"
	case ShapeCreate:
		return "create"
	case ShapeUpdate:
		return "update"
	case ShapeDelete:
		return "delete"
	case ShapeDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// readOnly reports whether the shape performs no writes.
func (s Shape) readOnly() bool {
	return s == ShapeGet || s == ShapeList
}

// Meta carries an action's registration metadata.
type Meta struct {
	Description string
	Shape       Shape
}

// Handler is the external domain handler contract. It receives validated,
// defaulted arguments and the request's debug context, and completes with a
// result or an error. Handlers never build envelopes in the common case;
// the execution adapter does.
type Handler func(ctx context.Context, args map[string]any, dc *debug.Context) (*HandlerResult, error)

// HandlerResult is the discriminated handler outcome. Exactly one field is
// expected to be set, matching the action's shape:
//
//   - Entity for get/create/update/delete
//   - Items for list, with Total carrying the provider-reported collection
//     size when it exceeds the returned page
//   - Confirmation for handlers that produce their own short confirmation
//   - Envelope for legacy handlers that still build a full envelope; the
//     adapter passes it through untouched.
type HandlerResult struct {
	Entity       any
	Items        []any
	Total        int
	Confirmation string
	Envelope     *domain.Envelope
}

// action is one immutable registry entry.
type action struct {
	domainName string
	name       string
	meta       Meta
	engine     *schema.Engine
	handler    Handler
}

// operation returns the canonical "domain.name" identifier.
func (a *action) operation() string {
	return a.domainName + "." + a.name
}
