package model

// OwnerProfile identifies a third-party item owner whose stock is rented
// out on commission.
type OwnerProfile struct {
	Name         string `json:"name"`
	OwnerName    string `json:"owner_name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	City         string `json:"city,omitempty"`
	SupplierLink string `json:"supplier_link,omitempty"`
}

// OwnerStats aggregates an owner's catalog and commission position.
type OwnerStats struct {
	TotalItems         int     `json:"total_items"`
	ActiveItems        int     `json:"active_items"`
	TotalRentals       int     `json:"total_rentals"`
	TotalSalesAmount   float64 `json:"total_sales_amount"`
	CommissionEarned   float64 `json:"commission_earned"`
	CommissionReceived float64 `json:"commission_received"`
	CommissionPending  float64 `json:"commission_pending"`
}

// OwnerItem is one catalog item of an owner with its rental performance.
type OwnerItem struct {
	Name                  string  `json:"name"`
	ItemName              string  `json:"item_name"`
	ItemGroup             string  `json:"item_group,omitempty"`
	RentalRatePerDay      float64 `json:"rental_rate_per_day"`
	Disabled              int     `json:"disabled"`
	OwnerCommissionPercent float64 `json:"owner_commission_percent"`
	OwnerCommissionFixed  float64 `json:"owner_commission_fixed"`
	Image                 string  `json:"image,omitempty"`
	RentalCount           int     `json:"rental_count"`
	TotalRevenue          float64 `json:"total_revenue"`
}

// OwnerSale is one invoiced rental of an owner's item.
type OwnerSale struct {
	InvoiceID        string  `json:"invoice_id"`
	PostingDate      string  `json:"posting_date"`
	FormattedDate    string  `json:"formatted_date,omitempty"`
	CustomerName     string  `json:"customer_name"`
	BookingStatus    string  `json:"booking_status"`
	ItemName         string  `json:"item_name"`
	Qty              float64 `json:"qty"`
	Amount           float64 `json:"amount"`
	CommissionAmount float64 `json:"commission_amount"`
}

// CommissionPayment is one payout made to an owner.
type CommissionPayment struct {
	JournalEntry  string  `json:"journal_entry"`
	PostingDate   string  `json:"posting_date"`
	FormattedDate string  `json:"formatted_date,omitempty"`
	Reference     string  `json:"reference,omitempty"`
	Amount        float64 `json:"amount"`
	Remarks       string  `json:"remarks,omitempty"`
}

// OwnerDashboard bundles everything the owner view needs in one fetch.
type OwnerDashboard struct {
	Success           bool                `json:"success"`
	Owner             *OwnerProfile       `json:"owner"`
	Stats             OwnerStats          `json:"stats"`
	Items             []OwnerItem         `json:"items"`
	RecentSales       []OwnerSale         `json:"recent_sales"`
	CommissionHistory []CommissionPayment `json:"commission_history"`
	Message           string              `json:"message,omitempty"`
	IsAdmin           bool                `json:"is_admin,omitempty"`
}

// OwnerSummary is a row of the admin's owner picker.
type OwnerSummary struct {
	Name                  string  `json:"name"`
	OwnerName             string  `json:"owner_name"`
	Email                 string  `json:"email,omitempty"`
	Phone                 string  `json:"phone,omitempty"`
	DefaultCommissionRate float64 `json:"default_commission_rate,omitempty"`
}

// ItemGroup and Supplier feed the item-creation form's pickers.
type ItemGroup struct {
	Name          string `json:"name"`
	ItemGroupName string `json:"item_group_name"`
}

type Supplier struct {
	Name         string `json:"name"`
	SupplierName string `json:"supplier_name"`
}

// ItemCreationContext is the reference data needed to create an item.
type ItemCreationContext struct {
	ItemGroups []ItemGroup `json:"item_groups"`
	Suppliers  []Supplier  `json:"suppliers"`
}

// NewSupplier is an inline supplier created together with an item.
type NewSupplier struct {
	SupplierName string `json:"supplier_name"`
	MobileNo     string `json:"mobile_no,omitempty"`
	EmailID      string `json:"email_id,omitempty"`
	Address      string `json:"address,omitempty"`
}

// UploadedImage is an image attached during item creation; Content is a
// data URL.
type UploadedImage struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// ItemDraft carries the fields of a new rental item.
type ItemDraft struct {
	ItemCode               string  `json:"item_code"`
	ItemName               string  `json:"item_name"`
	ItemGroup              string  `json:"item_group"`
	Description            string  `json:"description,omitempty"`
	RentalMRPPerDay        float64 `json:"rental_mrp_per_day"`
	RentalRatePerDay       float64 `json:"rental_rate_per_day"`
	CautionDeposit         float64 `json:"caution_deposit,omitempty"`
	PurchaseCost           float64 `json:"purchase_cost,omitempty"`
	IsThirdPartyItem       bool    `json:"is_third_party_item"`
	OwnerCommissionPercent float64 `json:"owner_commission_percent,omitempty"`
	OwnerCommissionFixed   float64 `json:"owner_commission_fixed,omitempty"`
	OwnerSupplierSource    string  `json:"owner_supplier_source,omitempty"`
}
