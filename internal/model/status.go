package model

// BookingStatus is the lifecycle state of a booking as reported by the
// rental backend.  The backend owns every transition; this package only
// mirrors the states for display and for sanity checks in tests.  An
// empty status means the booking is still an unconfirmed draft.
type BookingStatus string

const (
	StatusDraft        BookingStatus = ""               // unconfirmed draft, advance not yet collected
	StatusConfirmed    BookingStatus = "Confirmed"      // advance collected
	StatusOutForRental BookingStatus = "Out for Rental" // balance + caution deposit collected, items delivered
	StatusReturned     BookingStatus = "Returned"       // items returned, refund processed
	StatusCompleted    BookingStatus = "Completed"      // closed out
	StatusCancelled    BookingStatus = "Cancelled"      // aborted at any point
)

// ObservedTransition reports whether moving from one status to another is a
// transition this client can witness.  It is intentionally not used to gate
// any action: the backend is the sole authority, and a summary fetched after
// a mutation is trusted whatever it says.  Exchanges are not covered here
// because they surface as a newly created draft booking rather than as a
// transition of the original.
func ObservedTransition(from, to BookingStatus) bool {
	switch from {
	case StatusDraft:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusOutForRental || to == StatusCancelled
	case StatusOutForRental:
		return to == StatusReturned || to == StatusCompleted
	case StatusReturned:
		return to == StatusCompleted
	}
	return false
}

// Terminal reports whether no further stage transitions are expected.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Payment modes accepted by the backend for every collection and refund.
const (
	PayModeCash         = "Cash"
	PayModeUPI          = "UPI"
	PayModeCard         = "Card"
	PayModeBankTransfer = "Bank Transfer"
)

// ValidPayMode reports whether the given mode is one the backend accepts.
func ValidPayMode(mode string) bool {
	switch mode {
	case PayModeCash, PayModeUPI, PayModeCard, PayModeBankTransfer:
		return true
	}
	return false
}
