package router

import (
	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/handler"
)

// RegisterStorefront registers the authenticated storefront: customer
// records and selection, the session cart, and the customer-facing slice
// of bookings.  guard validates the session cookie; limit throttles the
// mutating endpoints.
func RegisterStorefront(e *echo.Echo, customers *handler.CustomerHandler, cart *handler.CartHandler, bookings *handler.BookingHandler, guard, limit echo.MiddlewareFunc) {
	g := e.Group("/v1", guard)

	g.GET("/customers", customers.Search)
	g.POST("/customers", customers.Create, limit)
	g.GET("/customers/:id", customers.Get)
	g.PUT("/customers/:id", customers.Update, limit)
	g.POST("/customers/:id/select", customers.Select)
	g.DELETE("/customers/select", customers.Deselect)

	g.GET("/cart", cart.Get)
	g.POST("/cart/items", cart.Add, limit)
	g.DELETE("/cart/items/:id", cart.Remove, limit)
	g.DELETE("/cart", cart.Clear, limit)

	g.GET("/bookings/active", bookings.Active)
	g.GET("/bookings/:id/summary", bookings.Summary)
	g.POST("/bookings", bookings.Create, limit)
}
