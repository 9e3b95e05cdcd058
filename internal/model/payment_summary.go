package model

// PaymentSummary is the backend's snapshot of where a booking sits in the
// three payment stages: advance at confirmation, balance plus caution
// deposit at delivery, and refund at return.  Every amount and every
// "can_*" flag is computed server side; the portal renders them verbatim
// and never re-derives what counts as fully paid.
type PaymentSummary struct {
	BookingID         string        `json:"booking_id"`
	Customer          string        `json:"customer"`
	CustomerID        string        `json:"customer_id"`
	BookingStatus     BookingStatus `json:"booking_status"`
	TotalRentalAmount float64       `json:"total_rental_amount"`
	BookingItems      []BookingItem `json:"booking_items"`

	// Stage 1: advance.
	AdvanceAmount    float64 `json:"advance_amount"`
	AdvanceCollected bool    `json:"advance_collected"`

	// Stage 2: balance + caution deposit, collected at delivery.
	BalanceAmountDue       float64 `json:"balance_amount_due"`
	BalanceAmountCollected float64 `json:"balance_amount_collected"`
	RemainingBalance       float64 `json:"remaining_balance"`
	CautionDepositDue      float64 `json:"caution_deposit_due"`
	CautionDepositCollected float64 `json:"caution_deposit_collected"`
	RemainingCautionDue    float64 `json:"remaining_caution_due"`
	TotalDueAtDelivery     float64 `json:"total_due_at_delivery"`

	// Stage 3: return & refund.
	CautionDepositRefunded  float64 `json:"caution_deposit_refunded"`
	CautionDepositDeduction float64 `json:"caution_deposit_deduction"`
	RemainingCautionRefund  float64 `json:"remaining_caution_refund"`
	DeductionReason         string  `json:"deduction_reason"`

	// Timestamps.
	BookingDate  string `json:"booking_date"`
	DeliveryTime string `json:"delivery_time,omitempty"`
	ReturnTime   string `json:"return_time,omitempty"`

	// Next-action flags, owned by the backend.
	CanCollectAdvance bool `json:"can_collect_advance"`
	CanCollectBalance bool `json:"can_collect_balance"`
	CanCollectCaution bool `json:"can_collect_caution"`
	CanProcessReturn  bool `json:"can_process_return"`
	CanRefundCaution  bool `json:"can_refund_caution"`
}

// RemainingBalanceDue returns the balance still owed, clamped at zero so a
// backend snapshot that over-collects never renders a negative due amount.
func (s *PaymentSummary) RemainingBalanceDue() float64 {
	due := s.BalanceAmountDue - s.BalanceAmountCollected
	if due < 0 {
		return 0
	}
	return due
}

// BalanceIsDue reports whether the delivery stage should render a "due"
// state.  Only a strictly positive remaining amount counts as due.
func (s *PaymentSummary) BalanceIsDue() bool {
	return s.RemainingBalanceDue() > 0
}
