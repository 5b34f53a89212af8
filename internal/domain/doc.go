// Package domain holds the transport-agnostic core types of the action
// pipeline: the error taxonomy and classifier, field-level validation
// errors, and the uniform response envelope returned for every dispatched
// action. It has no dependencies on adapters or the application layer.
package domain
