package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/service"
)

// StaffHandler serves the staff dashboard.
type StaffHandler struct {
	Base
	Staff *service.StaffService
}

func NewStaffHandler(base Base, staff *service.StaffService) *StaffHandler {
	return &StaffHandler{Base: base, Staff: staff}
}

// Stats returns the pending-work counters.
func (h *StaffHandler) Stats(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	stats, err := h.Staff.DashboardStats(c.Request().Context(), sess)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Bookings lists bookings across all customers with optional filters.
func (h *StaffHandler) Bookings(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	list, err := h.Staff.Bookings(c.Request().Context(), sess, service.BookingsQuery{
		Status: c.QueryParam("status"),
		Owner:  c.QueryParam("owner"),
		Search: c.QueryParam("q"),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": list})
}
