package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/service"
)

// CartHandler serves the session-scoped cart.
type CartHandler struct {
	Base
	Cart *service.CartService
}

func NewCartHandler(base Base, cart *service.CartService) *CartHandler {
	return &CartHandler{Base: base, Cart: cart}
}

// Get returns the current cart snapshot, freshly fetched.
func (h *CartHandler) Get(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	cart, err := h.Cart.Items(c.Request().Context(), sess)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

// Add puts an item into the cart.
func (h *CartHandler) Add(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req service.AddItemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cart, err := h.Cart.Add(c.Request().Context(), sess, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

// Remove deletes one cart line by id.
func (h *CartHandler) Remove(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	cart, err := h.Cart.Remove(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	cart, err := h.Cart.Clear(c.Request().Context(), sess)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}
