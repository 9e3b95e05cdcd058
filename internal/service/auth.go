package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/rentalworks/rental-portal/internal/session"
	"github.com/rentalworks/rental-portal/internal/upstream"
)

// Authenticator is the slice of the upstream client auth flows use.
type Authenticator interface {
	Login(ctx context.Context, usr, pwd string) (sid, fullName string, err error)
	Logout(ctx context.Context, sid string) error
	CurrentUser(ctx context.Context, sid string) (*upstream.Identity, error)
}

// AuthService owns the portal's login lifecycle.  A successful backend
// login yields a fresh portal session id under which the backend sid and
// the user's identity are stored; the caller turns that id into a signed
// cookie.
type AuthService struct {
	auth  Authenticator
	store session.Store
}

func NewAuthService(auth Authenticator, store session.Store) *AuthService {
	return &AuthService{auth: auth, store: store}
}

// Login authenticates against the backend and creates a portal session.
func (s *AuthService) Login(ctx context.Context, usr, pwd string) (*session.Session, error) {
	sid, fullName, err := s.auth.Login(ctx, usr, pwd)
	if err != nil {
		return nil, err
	}

	user := session.User{Email: usr, FullName: fullName}
	if id, err := s.auth.CurrentUser(ctx, sid); err == nil && id.IsLoggedIn {
		if id.Email != "" {
			user.Email = id.Email
		}
		if id.FullName != "" {
			user.FullName = id.FullName
		}
		user.Roles = id.Roles
	}

	sess := &session.Session{
		ID:   uuid.NewString(),
		SID:  sid,
		User: &user,
	}
	if err := s.store.SaveUser(ctx, sess.ID, user, sid); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout ends the backend session and wipes the portal session.  The
// backend call is best effort: an already-dead backend session must not
// keep the user logged in locally.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	if sess.SID != "" {
		if err := s.auth.Logout(ctx, sess.SID); err != nil && !errors.Is(err, upstream.ErrSessionExpired) {
			log.Printf("auth: backend logout failed: %v", err)
		}
	}
	return s.store.Clear(ctx, sess.ID)
}

// Check verifies the backend still honors the session's sid.  An expired
// backend session clears the portal session so the next request starts
// from the login page.
func (s *AuthService) Check(ctx context.Context, sess *session.Session) (*upstream.Identity, error) {
	id, err := s.auth.CurrentUser(ctx, sess.SID)
	if err != nil {
		if errors.Is(err, upstream.ErrSessionExpired) {
			_ = s.store.Clear(ctx, sess.ID)
		}
		return nil, err
	}
	if !id.IsLoggedIn {
		_ = s.store.Clear(ctx, sess.ID)
		return nil, upstream.ErrSessionExpired
	}
	return id, nil
}
