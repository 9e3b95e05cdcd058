package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/handler"
	"github.com/rentalworks/rental-portal/internal/middleware"
)

// RegisterOwner registers the third-party owner surface: the commission
// dashboard and item onboarding.  Owners see their own data; System
// Manager may inspect any owner.
func RegisterOwner(e *echo.Echo, owners *handler.OwnerHandler, guard, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/owner", guard, middleware.RequireRole(RoleOwner, RoleAdmin))

	g.GET("/dashboard", owners.Dashboard)
	g.GET("/owners", owners.List)
	g.GET("/items/context", owners.ItemContext)
	g.POST("/items", owners.CreateItem, limit)
}
