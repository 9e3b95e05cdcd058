// Package handler exposes the portal's HTTP surface.  Handlers bind the
// request, load the session record, call exactly one service operation
// and translate its error into a status code; business decisions stay
// upstream.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/middleware"
	"github.com/rentalworks/rental-portal/internal/service"
	"github.com/rentalworks/rental-portal/internal/session"
	"github.com/rentalworks/rental-portal/internal/upstream"
)

// Base carries the dependencies every authenticated handler needs.
type Base struct {
	Store  session.Store
	Cookie string // session cookie name, expired on forced logout
}

// loadSession rehydrates the session record named by the validated
// cookie.  Middleware guarantees the context keys exist on guarded
// routes.
func (b *Base) loadSession(c echo.Context) (*session.Session, error) {
	id, _ := c.Get(middleware.CtxSessionID).(string)
	if id == "" {
		return nil, session.ErrNoSession
	}
	return b.Store.Load(c.Request().Context(), id)
}

// expireCookie tells the browser to drop the session cookie.
func (b *Base) expireCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     b.Cookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// fail maps a service or upstream error onto an HTTP response.  Backend
// validation messages travel to the client verbatim; everything else
// gets a stable portal-owned message.
func (b *Base) fail(c echo.Context, err error) error {
	var apiErr *upstream.APIError
	switch {
	case errors.Is(err, upstream.ErrSessionExpired), errors.Is(err, session.ErrNoSession):
		if id, _ := c.Get(middleware.CtxSessionID).(string); id != "" {
			_ = b.Store.Clear(c.Request().Context(), id)
		}
		b.expireCookie(c)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
	case errors.Is(err, upstream.ErrUnreachable):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error":   "backend unreachable",
			"message": "could not reach the rental service, please check your connection",
		})
	case errors.As(err, &apiErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": apiErr.Message})
	case errors.Is(err, service.ErrBadInput), errors.Is(err, service.ErrNoCustomer):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		c.Logger().Errorf("unhandled error on %s: %v", c.Path(), err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
