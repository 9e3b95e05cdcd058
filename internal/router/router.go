// Package router wires the portal's HTTP routes.  Registration is split
// by surface: public catalog, authenticated storefront, staff dashboard
// and owner dashboard, each with its own middleware stack.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/handler"
)

// RegisterRoutes registers routes that need no authentication beyond the
// health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the public browse endpoints.  They serve
// guests, so the only middleware is the optional response cache.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/catalog", cache)
	g.GET("/items", h.Items)
	g.GET("/items/:code", h.Item)
	g.GET("/items/:code/availability", h.Availability)
	g.GET("/items/:code/images", h.Images)
	g.GET("/banners", h.Banners)
	g.GET("/categories", h.Categories)
}

// RegisterAuth registers login under /v1/auth and the session-bound
// logout/identity endpoints behind the session guard.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, guard echo.MiddlewareFunc) {
	e.POST("/v1/auth/login", a.Login)

	g := e.Group("/v1/auth", guard)
	g.POST("/logout", a.Logout)
	g.GET("/me", a.Me)
}
