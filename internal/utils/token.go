package utils // package utils provides helpers for portal session tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// SessionClaims are the portal-owned facts carried in the session cookie.
// The cookie identifies the server-side session record; the upstream sid
// itself is never put inside the token.  Roles ride along so route guards
// can run without a store lookup.
type SessionClaims struct {
	SessionID string   // identifier of the server-side session record
	Email     string   // login of the portal user
	Roles     []string // backend roles at login time
	Exp       time.Time
}

// ErrInvalidToken is returned for any token that fails to parse, verify
// or carry the expected claims.
var ErrInvalidToken = errors.New("invalid session token")

// NewSessionToken builds and signs an HS256 JWT for a portal session.
// Standard claims: subject (sub) holds the session id, exp and iat bound
// the lifetime; email and roles are custom claims.
func NewSessionToken(secret, sessionID, email string, roles []string, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"sub":   sessionID,
		"email": email,
		"roles": roles,
		"exp":   exp.Unix(),
		"iat":   time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseSessionToken verifies a token and extracts its claims.  Only HMAC
// signatures are accepted; anything else is rejected as invalid.
func ParseSessionToken(secret, raw string) (*SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	out := &SessionClaims{}
	if v, ok := mc["sub"].(string); ok {
		out.SessionID = v
	}
	if out.SessionID == "" {
		return nil, ErrInvalidToken
	}
	if v, ok := mc["email"].(string); ok {
		out.Email = v
	}
	if vs, ok := mc["roles"].([]interface{}); ok {
		for _, v := range vs {
			if s, ok := v.(string); ok {
				out.Roles = append(out.Roles, s)
			}
		}
	}
	if v, ok := mc["exp"].(float64); ok {
		out.Exp = time.Unix(int64(v), 0).UTC()
	}
	return out, nil
}
