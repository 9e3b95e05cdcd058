package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/service"
)

// CustomerHandler manages customer records and the session's selection.
type CustomerHandler struct {
	Base
	Customers *service.CustomerService
}

func NewCustomerHandler(base Base, customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{Base: base, Customers: customers}
}

// Search finds customers by name or mobile number.
func (h *CustomerHandler) Search(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	list, err := h.Customers.Search(c.Request().Context(), sess, c.QueryParam("q"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"customers": list})
}

// Create registers a customer and selects it for the session.
func (h *CustomerHandler) Create(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req service.CustomerInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cust, err := h.Customers.Create(c.Request().Context(), sess, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, cust)
}

// Update edits a customer record.
func (h *CustomerHandler) Update(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req service.CustomerInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	cust, err := h.Customers.Update(c.Request().Context(), sess, c.Param("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cust)
}

// Get fetches one customer record.
func (h *CustomerHandler) Get(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	cust, err := h.Customers.Details(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cust)
}

// Select pins a customer to the session; subsequent cart and booking
// calls run against it.
func (h *CustomerHandler) Select(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	cust, err := h.Customers.Details(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.Customers.Select(c.Request().Context(), sess, cust); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cust)
}

// Deselect clears the session's customer selection.
func (h *CustomerHandler) Deselect(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.Customers.Select(c.Request().Context(), sess, nil); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "cleared"})
}
