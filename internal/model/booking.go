package model

// Booking is a single row of a booking list as the backend returns it.
// It carries the superset of fields used by the customer bookings page and
// the staff dashboard; fields absent from a given listing simply stay zero.
//
// Fields:
//  Name                   – backend document name, used as the booking id.
//  PostingDate            – date the booking was recorded.
//  Total                  – total rental amount.
//  BookingStatus          – current lifecycle state (see BookingStatus).
//  Customer/CustomerName  – customer reference and display name.
//  Advance/Balance/Caution fields – collected amounts per payment stage.
//  FunctionDate           – event date the rental window is derived from.
//  BalanceDue             – remaining balance as computed by the backend.
//  ThirdPartyOwner        – owning supplier for commission items, if any.
type Booking struct {
	Name                   string        `json:"name"`
	PostingDate            string        `json:"posting_date"`
	Total                  float64       `json:"total"`
	BookingStatus          BookingStatus `json:"booking_status"`
	Customer               string        `json:"customer,omitempty"`
	CustomerName           string        `json:"customer_name"`
	AdvanceAmount          float64       `json:"advance_amount,omitempty"`
	BalanceAmountCollected float64       `json:"balance_amount_collected,omitempty"`
	CautionDepositAmount   float64       `json:"caution_deposit_amount,omitempty"`
	CautionDepositCollected float64      `json:"caution_deposit_collected,omitempty"`
	FunctionDate           string        `json:"function_date,omitempty"`
	RentalStartDate        string        `json:"rental_start_date,omitempty"`
	RentalEndDate          string        `json:"rental_end_date,omitempty"`
	BalanceDue             float64       `json:"balance_due,omitempty"`
	MobileNumber           string        `json:"mobile_number,omitempty"`
	ItemCount              int           `json:"item_count,omitempty"`
	ThirdPartyOwner        string        `json:"third_party_owner,omitempty"`
}

// BookingItem is one line item of a booking.
type BookingItem struct {
	ItemCode string  `json:"item_code"`
	ItemName string  `json:"item_name"`
	Qty      float64 `json:"qty"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// DashboardStats summarizes the staff work queue: bookings waiting on an
// advance, on delivery, on return, and the total currently active.
type DashboardStats struct {
	PendingAdvance  int `json:"pending_advance"`
	PendingDelivery int `json:"pending_delivery"`
	PendingReturn   int `json:"pending_return"`
	TotalActive     int `json:"total_active"`
}
