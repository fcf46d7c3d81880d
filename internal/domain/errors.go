package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a slug cannot name a location page (fewer than
// two segments or a malformed segment) or a stored page row does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when request input fails a business rule
// (e.g. an unknown locale). Handlers should map this to HTTP 422.
var ErrValidation = errors.New("validation error")

// ErrConfiguration is returned when static-generation options or the priority
// catalog are malformed. It must stop a build: silently producing a shorter
// prerender list is a data-loss failure that nobody notices after deploy.
// Handlers should map this to HTTP 422.
var ErrConfiguration = errors.New("configuration error")

// PageRenderError reports that a registered page implementation failed while
// rendering. The resolver logs it and degrades to the generic page; it is never
// surfaced to the visitor.
type PageRenderError struct {
	Key string
	Err error
}

func (e *PageRenderError) Error() string {
	return fmt.Sprintf("render page %q: %v", e.Key, e.Err)
}

func (e *PageRenderError) Unwrap() error {
	return e.Err
}
