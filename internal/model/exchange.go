package model

// ExchangeItem is a booking line marked for removal during an exchange,
// or a replacement line being added.  The same shape serves both sides of
// the swap; the backend receives each set as a JSON-encoded list.
type ExchangeItem struct {
	ItemCode string  `json:"item_code"`
	ItemName string  `json:"item_name"`
	Qty      float64 `json:"qty"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount,omitempty"`
}

// ExchangeQuote is the backend's valuation of a proposed exchange:
// the value leaving the booking, the value entering it, and the signed
// difference (new − removed) the customer settles.
type ExchangeQuote struct {
	RemovedValue float64 `json:"removed_value"`
	NewValue     float64 `json:"new_value"`
	Difference   float64 `json:"difference"`
}

// Exchange difference labels shown next to the settlement amount.
const (
	ExchangeCustomerOwes   = "customer owes"
	ExchangeRefundCustomer = "refund to customer"
)

// Label names who settles the difference.  A zero difference still reads
// "customer owes" so the amount row renders as ₹0 owed rather than a refund.
func (q ExchangeQuote) Label() string {
	if q.Difference >= 0 {
		return ExchangeCustomerOwes
	}
	return ExchangeRefundCustomer
}

// Abs is the magnitude displayed next to the label.
func (q ExchangeQuote) Abs() float64 {
	if q.Difference < 0 {
		return -q.Difference
	}
	return q.Difference
}

// ExchangeSearchResult is a catalog hit offered as a replacement item.
type ExchangeSearchResult struct {
	ItemCode         string  `json:"item_code"`
	ItemName         string  `json:"item_name"`
	Image            string  `json:"image,omitempty"`
	RentalRatePerDay float64 `json:"rental_rate_per_day"`
}
