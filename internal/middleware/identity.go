package middleware

// identity.go defines helpers shared across middleware files.  The rate
// limiter keys buckets per user where possible; unauthenticated traffic
// shares a "guest" identity per IP.

import "github.com/labstack/echo/v4"

// userIdentity returns the authenticated user's email, or "guest" when the
// request carries no valid session.
func userIdentity(c echo.Context) string {
	if v, ok := c.Get(CtxEmail).(string); ok && v != "" {
		return v
	}
	return "guest"
}
