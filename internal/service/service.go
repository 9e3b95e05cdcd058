// Package service orchestrates portal operations against the rental
// backend.  Services never compute authoritative business state: each
// operation is a single backend invocation, and view state is refreshed by
// re-fetching rather than by local mutation.
package service

import (
	"context"
	"encoding/json"
	"errors"
)

// Backend is the slice of the upstream client the services use.  The
// concrete implementation is upstream.Client; tests substitute a stub or a
// client pointed at a local test server.
type Backend interface {
	Call(ctx context.Context, sid, method string, args any, out any) error
}

// ErrNoCustomer is returned by customer-scoped operations when the session
// has no selected customer.
var ErrNoCustomer = errors.New("no customer selected")

// ErrBadInput flags a request that fails local validation before any
// backend call is made.
var ErrBadInput = errors.New("invalid input")

// jsonString marshals v for backend arguments that expect an embedded
// JSON string rather than a nested object.
func jsonString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
