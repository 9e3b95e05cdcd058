// Package queue defines message payloads exchanged over the message broker.
package queue

// Stage names carried in BookingStageEvent.
const (
	StageCreated   = "created"
	StageAdvance   = "advance_collected"
	StageDelivery  = "balance_and_deposit_collected"
	StageReturn    = "return_and_refund_processed"
	StageExchanged = "exchanged"
)

// BookingStageEvent is published after a booking stage transition has been
// accepted by the backend.  It carries enough for downstream consumers to
// log, notify or feed analytics without calling the backend again.  The
// portal publishes fire-and-forget; a lost event never fails the request.
type BookingStageEvent struct {
	BookingID    string  `json:"booking_id"`
	NewBookingID string  `json:"new_booking_id,omitempty"` // set for exchanges
	Stage        string  `json:"stage"`
	CustomerID   string  `json:"customer_id,omitempty"`
	Amount       float64 `json:"amount,omitempty"`
	Deposit      float64 `json:"deposit,omitempty"`
	Deduction    float64 `json:"deduction,omitempty"`
	PaymentMode  string  `json:"payment_mode,omitempty"`
	Actor        string  `json:"actor,omitempty"` // portal user who triggered the stage
	OccurredAt   string  `json:"occurred_at"`
}
