package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/service"
)

// OwnerHandler serves the third-party owner surface.
type OwnerHandler struct {
	Base
	Owners *service.OwnerService
}

func NewOwnerHandler(base Base, owners *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{Base: base, Owners: owners}
}

// Dashboard returns the commission dashboard.  Admins may name an owner
// via ?owner_id=; regular owners get their own.
func (h *OwnerHandler) Dashboard(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	dash, err := h.Owners.Dashboard(c.Request().Context(), sess, c.QueryParam("owner_id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, dash)
}

// List returns all owner profiles for the admin picker.
func (h *OwnerHandler) List(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	owners, err := h.Owners.Owners(c.Request().Context(), sess)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"owners": owners})
}

// ItemContext returns the pickers the item-creation form needs.
func (h *OwnerHandler) ItemContext(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	cctx, err := h.Owners.ItemCreationContext(c.Request().Context(), sess)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, cctx)
}

// CreateItem registers a new rental item.
func (h *OwnerHandler) CreateItem(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req service.CreateItemInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	code, err := h.Owners.CreateItem(c.Request().Context(), sess, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item_code": code})
}
