package model

// Customer is a customer record as returned by search and detail lookups.
// The backend owns the record; the portal only caches the currently
// selected customer per session, and that cache may go stale.
type Customer struct {
	Name            string `json:"name"` // backend document name, used as the customer id
	CustomerName    string `json:"customer_name"`
	MobileNumber    string `json:"mobile_number,omitempty"`
	EmailID         string `json:"email_id,omitempty"`
	CustomerGroup   string `json:"customer_group,omitempty"`
	BookingCount    int    `json:"booking_count,omitempty"`
	LastBookingDate string `json:"last_booking_date,omitempty"`
}
