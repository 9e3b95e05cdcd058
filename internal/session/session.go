// Package session holds the portal's per-browser state: who is logged in,
// which customer is selected, and the last cart snapshot.  The state is
// advisory only — the rental backend stays authoritative — but it is
// persisted write-through so a reload does not lose the selection.
package session

import (
	"context"
	"errors"

	"github.com/rentalworks/rental-portal/internal/model"
)

// User is the authenticated portal identity cached for a session.
type User struct {
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	Roles    []string `json:"roles,omitempty"`
}

// HasRole reports whether the user carries the given backend role.
func (u *User) HasRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Session is the explicit context object passed down to services in place
// of the ambient global store the SPA used.  SID is the backend session
// cookie captured at login; it never leaves the server.
type Session struct {
	ID       string
	SID      string
	User     *User
	Customer *model.Customer
	Cart     *model.Cart
}

// LoggedIn reports whether the session has an authenticated user.
func (s *Session) LoggedIn() bool { return s != nil && s.User != nil }

// ErrNoSession is returned by Store.Load when the session id has no user
// record, either because it never existed or because it was cleared on
// logout or session expiry.
var ErrNoSession = errors.New("no such session")

// Store persists sessions in durable key-value storage.  Every mutation is
// written synchronously (write-through); there is no expiry policy beyond
// the store's TTL, and Clear removes all entries for the id at once.
type Store interface {
	// Load rehydrates a session.  Customer and Cart may be nil when never
	// set; a missing user record yields ErrNoSession.
	Load(ctx context.Context, id string) (*Session, error)
	// SaveUser records the authenticated identity and backend sid.
	SaveUser(ctx context.Context, id string, u User, sid string) error
	// SaveCustomer records the selected customer; nil clears the selection.
	SaveCustomer(ctx context.Context, id string, c *model.Customer) error
	// SaveCart records the latest fetched cart snapshot.
	SaveCart(ctx context.Context, id string, cart *model.Cart) error
	// Clear removes user, customer selection and cart snapshot.
	Clear(ctx context.Context, id string) error
}
