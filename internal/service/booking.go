package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/rentalworks/rental-portal/internal/model"
	"github.com/rentalworks/rental-portal/internal/queue"
	"github.com/rentalworks/rental-portal/internal/session"
)

// StagePublisher emits booking stage events to the message broker.  A nil
// publisher disables auditing; errors are logged and never fail the
// triggering request.
type StagePublisher interface {
	PublishBookingStage(ctx context.Context, ev queue.BookingStageEvent) error
}

// BookingService drives the booking payment lifecycle: advance at
// confirmation, balance plus caution deposit at delivery, refund at
// return, and exchanges.  Every mutation is one atomic backend call; the
// service holds no booking state and callers re-fetch the payment summary
// after each stage.
//
// Mutations run through a singleflight group keyed by action and booking,
// so a double-submitted form performs exactly one backend call and both
// submissions see its result.  The guard is per action, not per booking:
// two different staff actions on two different bookings proceed in
// parallel, and the backend stays the serialization point.
type BookingService struct {
	rpc   Backend
	store session.Store
	audit StagePublisher
	group singleflight.Group
}

func NewBookingService(rpc Backend, store session.Store, audit StagePublisher) *BookingService {
	return &BookingService{rpc: rpc, store: store, audit: audit}
}

// Summary fetches the payment snapshot for one booking.  The five can_*
// flags arrive computed by the backend and are passed through untouched;
// on any failure the caller renders an error state instead of guessing,
// and no retry is attempted.
func (s *BookingService) Summary(ctx context.Context, sess *session.Session, bookingID string) (*model.PaymentSummary, error) {
	var resp struct {
		Summary *model.PaymentSummary `json:"summary"`
	}
	err := s.rpc.Call(ctx, sess.SID, "get_booking_payment_summary",
		map[string]any{"booking_id": bookingID}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Summary == nil {
		return nil, fmt.Errorf("%w: booking %s has no payment summary", ErrBadInput, bookingID)
	}
	return resp.Summary, nil
}

// ActiveBookings lists a customer's open bookings.
func (s *BookingService) ActiveBookings(ctx context.Context, sess *session.Session, customerID string) ([]model.Booking, error) {
	var resp struct {
		Bookings []model.Booking `json:"bookings"`
	}
	err := s.rpc.Call(ctx, sess.SID, "get_customer_active_bookings",
		map[string]any{"customer_id": customerID}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}

// CreateFromCart turns the customer's cart into a new draft booking and
// returns its id.  The backend consumes the cart; the local snapshot is
// reconciled by re-fetching, never by guessing.
func (s *BookingService) CreateFromCart(ctx context.Context, sess *session.Session, customerID string, advance float64, instructions string) (string, error) {
	if customerID == "" {
		return "", ErrNoCustomer
	}
	v, err, _ := s.group.Do("create:"+customerID, func() (any, error) {
		var resp struct {
			BookingID string `json:"booking_id"`
		}
		err := s.rpc.Call(ctx, sess.SID, "create_booking_from_cart", map[string]any{
			"customer_id":          customerID,
			"advance_amount":       advance,
			"special_instructions": instructions,
		}, &resp)
		if err != nil {
			return "", err
		}
		return resp.BookingID, nil
	})
	if err != nil {
		return "", err
	}
	bookingID := v.(string)

	// The cart was consumed upstream; refresh the snapshot from the source
	// of truth so a reload does not resurrect cleared lines.
	var cart model.Cart
	if err := s.rpc.Call(ctx, sess.SID, "get_cart_items",
		map[string]any{"customer_id": customerID}, &cart); err == nil {
		_ = s.store.SaveCart(ctx, sess.ID, &cart)
	}

	s.publish(ctx, queue.BookingStageEvent{
		BookingID:  bookingID,
		Stage:      queue.StageCreated,
		CustomerID: customerID,
		Amount:     advance,
		Actor:      actor(sess),
	})
	return bookingID, nil
}

// ConfirmWithAdvance records the advance payment; the backend moves the
// booking toward Confirmed.
func (s *BookingService) ConfirmWithAdvance(ctx context.Context, sess *session.Session, bookingID string, amount float64, mode string) error {
	if err := checkStageInput(bookingID, mode); err != nil {
		return err
	}
	_, err, _ := s.group.Do("advance:"+bookingID, func() (any, error) {
		return nil, s.rpc.Call(ctx, sess.SID, "confirm_booking_with_advance", map[string]any{
			"booking_id":     bookingID,
			"advance_amount": amount,
			"payment_mode":   mode,
		}, nil)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, queue.BookingStageEvent{
		BookingID:   bookingID,
		Stage:       queue.StageAdvance,
		Amount:      amount,
		PaymentMode: mode,
		Actor:       actor(sess),
	})
	return nil
}

// CollectBalanceAndDeposit records the delivery-time collection of the
// remaining balance and the caution deposit; the backend moves the booking
// toward Out for Rental.
func (s *BookingService) CollectBalanceAndDeposit(ctx context.Context, sess *session.Session, bookingID string, balance, deposit float64, mode string) error {
	if err := checkStageInput(bookingID, mode); err != nil {
		return err
	}
	_, err, _ := s.group.Do("delivery:"+bookingID, func() (any, error) {
		return nil, s.rpc.Call(ctx, sess.SID, "collect_balance_and_caution_deposit", map[string]any{
			"booking_id":             bookingID,
			"balance_amount":         balance,
			"caution_deposit_amount": deposit,
			"payment_mode":           mode,
		}, nil)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, queue.BookingStageEvent{
		BookingID:   bookingID,
		Stage:       queue.StageDelivery,
		Amount:      balance,
		Deposit:     deposit,
		PaymentMode: mode,
		Actor:       actor(sess),
	})
	return nil
}

// ProcessReturnAndRefund records the item return and the caution deposit
// refund, minus an optional deduction; the backend moves the booking
// toward Returned/Completed.
func (s *BookingService) ProcessReturnAndRefund(ctx context.Context, sess *session.Session, bookingID string, refund, deduction float64, reason, mode string) error {
	if err := checkStageInput(bookingID, mode); err != nil {
		return err
	}
	if deduction > 0 && reason == "" {
		return fmt.Errorf("%w: deduction requires a reason", ErrBadInput)
	}
	_, err, _ := s.group.Do("return:"+bookingID, func() (any, error) {
		return nil, s.rpc.Call(ctx, sess.SID, "process_item_return_and_refund", map[string]any{
			"booking_id":             bookingID,
			"caution_deposit_refund": refund,
			"deduction_amount":       deduction,
			"deduction_reason":       reason,
			"payment_mode":           mode,
		}, nil)
	})
	if err != nil {
		return err
	}
	s.publish(ctx, queue.BookingStageEvent{
		BookingID:   bookingID,
		Stage:       queue.StageReturn,
		Amount:      refund,
		Deduction:   deduction,
		PaymentMode: mode,
		Actor:       actor(sess),
	})
	return nil
}

// ItemsForExchange lists the booking's current lines so staff can mark
// removals.
func (s *BookingService) ItemsForExchange(ctx context.Context, sess *session.Session, bookingID string) ([]model.ExchangeItem, model.BookingStatus, error) {
	var resp struct {
		Items         []model.ExchangeItem `json:"items"`
		BookingStatus model.BookingStatus  `json:"booking_status"`
	}
	err := s.rpc.Call(ctx, sess.SID, "get_booking_items_for_exchange",
		map[string]any{"booking_id": bookingID}, &resp)
	if err != nil {
		return nil, "", err
	}
	return resp.Items, resp.BookingStatus, nil
}

// SearchExchangeItems finds catalog items offered as replacements.
func (s *BookingService) SearchExchangeItems(ctx context.Context, sess *session.Session, query string) ([]model.ExchangeSearchResult, error) {
	var resp struct {
		Items []model.ExchangeSearchResult `json:"items"`
	}
	err := s.rpc.Call(ctx, sess.SID, "get_available_items_for_exchange",
		map[string]any{"search_query": query}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// QuoteExchange asks the backend to value a proposed swap.  The returned
// difference is new_value − removed_value; display labeling is the
// quote's own concern (see model.ExchangeQuote).
func (s *BookingService) QuoteExchange(ctx context.Context, sess *session.Session, bookingID string, remove, add []model.ExchangeItem) (*model.ExchangeQuote, error) {
	var quote model.ExchangeQuote
	err := s.rpc.Call(ctx, sess.SID, "calculate_exchange_difference", map[string]any{
		"booking_id":      bookingID,
		"items_to_remove": jsonString(remove),
		"new_items":       jsonString(add),
	}, &quote)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// ProcessExchange swaps booking lines for replacements and settles the
// value difference.  The backend answers with the id of a freshly created
// booking that supersedes the exchanged lines; the original booking's
// terminal state stays the backend's business.
func (s *BookingService) ProcessExchange(ctx context.Context, sess *session.Session, bookingID string, remove, add []model.ExchangeItem, adjustment float64, mode string) (string, error) {
	if err := checkStageInput(bookingID, mode); err != nil {
		return "", err
	}
	if len(remove) == 0 || len(add) == 0 {
		return "", fmt.Errorf("%w: exchange needs items to remove and replacements", ErrBadInput)
	}
	v, err, _ := s.group.Do("exchange:"+bookingID, func() (any, error) {
		var resp struct {
			NewBooking string `json:"new_booking"`
		}
		err := s.rpc.Call(ctx, sess.SID, "process_exchange", map[string]any{
			"booking_id":        bookingID,
			"items_to_remove":   jsonString(remove),
			"new_items":         jsonString(add),
			"adjustment_amount": adjustment,
			"payment_mode":      mode,
		}, &resp)
		if err != nil {
			return "", err
		}
		return resp.NewBooking, nil
	})
	if err != nil {
		return "", err
	}
	newID := v.(string)
	s.publish(ctx, queue.BookingStageEvent{
		BookingID:    bookingID,
		NewBookingID: newID,
		Stage:        queue.StageExchanged,
		Amount:       adjustment,
		PaymentMode:  mode,
		Actor:        actor(sess),
	})
	return newID, nil
}

func checkStageInput(bookingID, mode string) error {
	if bookingID == "" {
		return fmt.Errorf("%w: booking id is required", ErrBadInput)
	}
	if !model.ValidPayMode(mode) {
		return fmt.Errorf("%w: unknown payment mode %q", ErrBadInput, mode)
	}
	return nil
}

// publish emits an audit event and logs failures without propagating them.
func (s *BookingService) publish(ctx context.Context, ev queue.BookingStageEvent) {
	if s.audit == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.audit.PublishBookingStage(ctx, ev); err != nil {
		log.Printf("booking audit: publish %s for %s failed: %v", ev.Stage, ev.BookingID, err)
	}
}

func actor(sess *session.Session) string {
	if sess != nil && sess.User != nil {
		return sess.User.Email
	}
	return ""
}
