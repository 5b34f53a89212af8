// Package schema wraps a JSON Schema capability into the pipeline's
// validation contract: parse a loosely-typed argument bag into a defaulted
// value, reporting every offending field rather than just the first.
//
// The concrete capability is github.com/google/jsonschema-go; the rest of
// the pipeline only sees (value, *domain.ValidationError) results, so the
// library could be swapped without touching the router.
package schema

import (
	"fmt"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/cmsbridge/cmsbridge/internal/domain"
)

// Engine validates argument bags against a single resolved schema. An
// Engine is built once per action at registration time and is read-only
// afterwards, so concurrent Validate calls need no locking.
type Engine struct {
	root     *jsonschema.Schema
	resolved *jsonschema.Resolved

	// properties holds independently resolved top-level property schemas,
	// used to attribute failures to individual fields. Properties that fail
	// standalone resolution (external $refs) are simply absent; the
	// whole-schema pass still catches their errors.
	properties map[string]*jsonschema.Resolved
}

// New resolves the given schema and prepares per-property validators.
func New(s *jsonschema.Schema) (*Engine, error) {
	if s == nil {
		return nil, fmt.Errorf("schema must not be nil")
	}

	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolving schema: %w", err)
	}

	props := make(map[string]*jsonschema.Resolved, len(s.Properties))
	for name, sub := range s.Properties {
		if sub == nil {
			continue
		}
		if r, rerr := sub.Resolve(nil); rerr == nil {
			props[name] = r
		}
	}

	return &Engine{root: s, resolved: resolved, properties: props}, nil
}

// Schema returns the underlying schema, for catalog and transport exposure.
func (e *Engine) Schema() *jsonschema.Schema {
	return e.root
}

// Validate checks raw against the schema. It is pure: raw is never mutated.
// On success it returns a defaulted deep copy of the arguments. On failure
// it returns a *domain.ValidationError listing every offending field as a
// (path, message) pair.
func (e *Engine) Validate(raw map[string]any) (map[string]any, *domain.ValidationError) {
	args := copyBag(raw)
	if err := e.resolved.ApplyDefaults(&args); err != nil {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Path: "", Message: fmt.Sprintf("applying defaults: %v", err)},
		}}
	}

	var fields []domain.FieldError

	for _, req := range e.root.Required {
		if _, ok := args[req]; !ok {
			fields = append(fields, domain.FieldError{
				Path:    req,
				Message: "required field is missing",
			})
		}
	}

	for _, name := range sortedKeys(args) {
		sub, ok := e.properties[name]
		if !ok {
			continue
		}
		if err := sub.Validate(args[name]); err != nil {
			fields = append(fields, domain.FieldError{
				Path:    name,
				Message: err.Error(),
			})
		}
	}

	// Whole-schema pass catches cross-field constraints and anything the
	// per-property pass cannot attribute.
	if len(fields) == 0 {
		if err := e.resolved.Validate(args); err != nil {
			fields = append(fields, domain.FieldError{Path: "", Message: err.Error()})
		}
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return args, nil
}

// copyBag deep-copies a JSON-like argument bag so validation can default
// and normalize without mutating the caller's map.
func copyBag(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyBag(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
