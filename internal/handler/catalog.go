package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/service"
)

// CatalogHandler serves the public browse surface.  These routes need no
// session; backend calls go out as guest.
type CatalogHandler struct {
	Base
	Catalog *service.CatalogService
}

func NewCatalogHandler(base Base, catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Base: base, Catalog: catalog}
}

// Items lists catalog items with search/category/sort/paging query params.
func (h *CatalogHandler) Items(c echo.Context) error {
	q := service.ItemsQuery{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		SortBy:   c.QueryParam("sort_by"),
	}
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil {
		q.PageSize = v
	}
	page, err := h.Catalog.Items(c.Request().Context(), "", q)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Item fetches one item's detail view.
func (h *CatalogHandler) Item(c echo.Context) error {
	item, err := h.Catalog.ItemDetail(c.Request().Context(), "", c.Param("code"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// Availability checks one item over a date range.
func (h *CatalogHandler) Availability(c echo.Context) error {
	start, end := c.QueryParam("start_date"), c.QueryParam("end_date")
	if start == "" || end == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date and end_date required"})
	}
	av, err := h.Catalog.Availability(c.Request().Context(), "", c.Param("code"), start, end)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, av)
}

// Images lists an item's gallery.
func (h *CatalogHandler) Images(c echo.Context) error {
	imgs, err := h.Catalog.Images(c.Request().Context(), "", c.Param("code"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"images": imgs})
}

// Banners serves the home-page banners from the warm cache.
func (h *CatalogHandler) Banners(c echo.Context) error {
	banners, err := h.Catalog.Banners(c.Request().Context(), "")
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"banners": banners})
}

// Categories lists the browse categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	cats, err := h.Catalog.Categories(c.Request().Context(), "")
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": cats})
}
