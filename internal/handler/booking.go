package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentalworks/rental-portal/internal/model"
	"github.com/rentalworks/rental-portal/internal/service"
	"github.com/rentalworks/rental-portal/internal/session"
)

// BookingHandler drives the booking payment lifecycle.  Each stage
// endpoint performs one transition and answers with the re-fetched
// payment summary so the client renders confirmed state only.
type BookingHandler struct {
	Base
	Bookings *service.BookingService
}

func NewBookingHandler(base Base, bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{Base: base, Bookings: bookings}
}

// Summary returns the payment snapshot for one booking.
func (h *BookingHandler) Summary(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	sum, err := h.Bookings.Summary(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"summary": sum})
}

// Active lists the selected customer's open bookings.
func (h *BookingHandler) Active(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	customerID := c.QueryParam("customer_id")
	if customerID == "" && sess.Customer != nil {
		customerID = sess.Customer.Name
	}
	if customerID == "" {
		return h.fail(c, service.ErrNoCustomer)
	}
	list, err := h.Bookings.ActiveBookings(c.Request().Context(), sess, customerID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": list})
}

type createBookingReq struct {
	AdvanceAmount       float64 `json:"advance_amount"`
	SpecialInstructions string  `json:"special_instructions"`
}

// Create turns the selected customer's cart into a draft booking.
func (h *BookingHandler) Create(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	if sess.Customer == nil {
		return h.fail(c, service.ErrNoCustomer)
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	id, err := h.Bookings.CreateFromCart(c.Request().Context(), sess, sess.Customer.Name, req.AdvanceAmount, req.SpecialInstructions)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"booking_id": id})
}

type stageReq struct {
	Amount          float64 `json:"amount"`
	BalanceAmount   float64 `json:"balance_amount"`
	CautionDeposit  float64 `json:"caution_deposit"`
	RefundAmount    float64 `json:"refund_amount"`
	DeductionAmount float64 `json:"deduction_amount"`
	DeductionReason string  `json:"deduction_reason"`
	PaymentMode     string  `json:"payment_mode"`
}

// Advance records the advance payment and confirms the booking.
func (h *BookingHandler) Advance(c echo.Context) error {
	return h.stage(c, func(ctx context.Context, sess *session.Session, id string, req stageReq) error {
		return h.Bookings.ConfirmWithAdvance(ctx, sess, id, req.Amount, req.PaymentMode)
	})
}

// Delivery records the balance and caution deposit collection.
func (h *BookingHandler) Delivery(c echo.Context) error {
	return h.stage(c, func(ctx context.Context, sess *session.Session, id string, req stageReq) error {
		return h.Bookings.CollectBalanceAndDeposit(ctx, sess, id, req.BalanceAmount, req.CautionDeposit, req.PaymentMode)
	})
}

// Return records the item return and deposit refund.
func (h *BookingHandler) Return(c echo.Context) error {
	return h.stage(c, func(ctx context.Context, sess *session.Session, id string, req stageReq) error {
		return h.Bookings.ProcessReturnAndRefund(ctx, sess, id, req.RefundAmount, req.DeductionAmount, req.DeductionReason, req.PaymentMode)
	})
}

// stage factors the bind/transition/re-fetch shape shared by the three
// payment stages.
func (h *BookingHandler) stage(c echo.Context, do func(context.Context, *session.Session, string, stageReq) error) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req stageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	id := c.Param("id")
	ctx := c.Request().Context()
	if err := do(ctx, sess, id, req); err != nil {
		return h.fail(c, err)
	}
	sum, err := h.Bookings.Summary(ctx, sess, id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"summary": sum})
}

// ExchangeItems lists the booking's lines plus its status for the
// exchange form.
func (h *BookingHandler) ExchangeItems(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	items, status, err := h.Bookings.ItemsForExchange(c.Request().Context(), sess, c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "booking_status": status})
}

// ExchangeSearch finds replacement candidates in the catalog.
func (h *BookingHandler) ExchangeSearch(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	items, err := h.Bookings.SearchExchangeItems(c.Request().Context(), sess, c.QueryParam("q"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type exchangeReq struct {
	Remove           []model.ExchangeItem `json:"items_to_remove"`
	Add              []model.ExchangeItem `json:"new_items"`
	AdjustmentAmount float64              `json:"adjustment_amount"`
	PaymentMode      string               `json:"payment_mode"`
}

// ExchangeQuote values a proposed swap without committing it.
func (h *BookingHandler) ExchangeQuote(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req exchangeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	quote, err := h.Bookings.QuoteExchange(c.Request().Context(), sess, c.Param("id"), req.Remove, req.Add)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"quote":      quote,
		"label":      quote.Label(),
		"difference": quote.Abs(),
	})
}

// Exchange commits the swap and returns the superseding booking's id.
func (h *BookingHandler) Exchange(c echo.Context) error {
	sess, err := h.loadSession(c)
	if err != nil {
		return h.fail(c, err)
	}
	var req exchangeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	newID, err := h.Bookings.ProcessExchange(c.Request().Context(), sess, c.Param("id"), req.Remove, req.Add, req.AdjustmentAmount, req.PaymentMode)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"new_booking": newID})
}
