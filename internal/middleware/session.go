package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/utils"
)

// Context keys set by SessionAuth and read by handlers and other
// middleware.
const (
	CtxSessionID = "session_id"
	CtxEmail     = "email"
	CtxRoles     = "roles"
)

// SessionAuth returns an Echo middleware that validates the portal session
// cookie and injects the session id, email and roles into the request
// context.  The cookie carries a signed JWT naming the server-side session
// record; handlers load the record itself through the session store.  A
// missing or invalid cookie yields 401 so the client knows to show the
// login screen.
func SessionAuth(secret, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(cookieName)
			if err != nil || ck.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not logged in"})
			}
			claims, err := utils.ParseSessionToken(secret, ck.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
			}
			c.Set(CtxSessionID, claims.SessionID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRoles, claims.Roles)
			return next(c)
		}
	}
}
