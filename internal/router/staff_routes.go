package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/handler"
	"github.com/rentalworks/rental-portal/internal/middleware"
)

// Backend roles that open the staff and owner surfaces.  System Manager
// is the backend's administrator role and passes both guards.
const (
	RoleStaff = "Rental Staff"
	RoleOwner = "Rental Owner"
	RoleAdmin = "System Manager"
)

// RegisterStaff registers the staff dashboard and the booking lifecycle
// transitions.  Every route requires the staff role; the mutating stage
// endpoints additionally sit behind the rate limiter.
func RegisterStaff(e *echo.Echo, staff *handler.StaffHandler, bookings *handler.BookingHandler, guard, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/staff", guard, middleware.RequireRole(RoleStaff, RoleAdmin))

	g.GET("/stats", staff.Stats)
	g.GET("/bookings", staff.Bookings)

	g.POST("/bookings/:id/advance", bookings.Advance, limit)
	g.POST("/bookings/:id/delivery", bookings.Delivery, limit)
	g.POST("/bookings/:id/return", bookings.Return, limit)

	g.GET("/bookings/:id/exchange/items", bookings.ExchangeItems)
	g.GET("/exchange/search", bookings.ExchangeSearch)
	g.POST("/bookings/:id/exchange/quote", bookings.ExchangeQuote)
	g.POST("/bookings/:id/exchange", bookings.Exchange, limit)
}
