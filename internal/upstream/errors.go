// Package upstream implements the portal's client for the rental backend's
// whitelisted RPC methods.  The backend owns all business state; this
// package only moves requests and decodes the response envelope.  Errors
// are classified here once so that handlers can translate them without
// inspecting response bodies themselves.
package upstream

import (
	"errors"
	"fmt"
)

// ErrUnreachable is returned when no response was received at all
// (connection refused, DNS failure, timeout).  Handlers should translate
// this into a "check your connection" style message.
var ErrUnreachable = errors.New("rental backend unreachable")

// ErrSessionExpired is returned on HTTP 401/403.  Callers must treat the
// portal session as logged out and clear any cached session state.
var ErrSessionExpired = errors.New("session expired")

// APIError is a business-rule rejection: the backend answered, but with
// success=false or a non-2xx status carrying a message.  The message is
// surfaced to the user verbatim and never retried.
type APIError struct {
	Method  string // RPC method that was called
	Status  int    // HTTP status, 0 for success=false rejections
	Message string // backend's message, verbatim
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Method, e.Message)
	}
	return fmt.Sprintf("%s: request rejected (status %d)", e.Method, e.Status)
}
