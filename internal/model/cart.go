package model

// CartItem is one line of a customer's cart.  Lines are created by
// "add to cart", removed individually, and the whole cart is consumed when
// a booking is created from it.
//
// Fields:
//  CartItemID   – backend identifier of the cart line.
//  ItemCode     – catalog item reference.
//  RentalRate   – per-day rate applied to this line.
//  RentalDays   – length of the rental window.
//  TotalAmount  – computed line amount (rate × days × quantity).
//  FunctionDate – event date the window was derived from, if given.
type CartItem struct {
	CartItemID      string  `json:"cart_item_id"`
	ItemCode        string  `json:"item_code"`
	ItemName        string  `json:"item_name"`
	ItemImage       string  `json:"item_image,omitempty"`
	RentalRate      float64 `json:"rental_rate"`
	RentalDays      int     `json:"rental_days"`
	TotalAmount     float64 `json:"total_amount"`
	FunctionDate    string  `json:"function_date,omitempty"`
	RentalStartDate string  `json:"rental_start_date,omitempty"`
	RentalEndDate   string  `json:"rental_end_date,omitempty"`
	Quantity        int     `json:"quantity"`
}

// Cart is the backend's snapshot of a customer's cart.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// Empty reports whether the cart holds no lines.
func (c *Cart) Empty() bool { return c == nil || len(c.Items) == 0 }
