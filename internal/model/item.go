package model

import (
	"bytes"
	"encoding/json"
)

// Item is a rental catalog entry.  Read-only from the portal's side.
//
// Fields:
//  Name / ItemCode    – backend document name and item code (usually equal).
//  RentalRatePerDay   – effective per-day rate.
//  RentalMRPPerDay    – list price used to render discounts.
//  IsAvailable        – availability flag for the browse view.
//  CautionDeposit     – refundable deposit collected at delivery.
type Item struct {
	Name               string      `json:"name"`
	ItemCode           string      `json:"item_code"`
	ItemName           string      `json:"item_name"`
	Description        string      `json:"description,omitempty"`
	Image              string      `json:"image,omitempty"`
	Images             []ItemImage `json:"images,omitempty"`
	RentalRatePerDay   float64     `json:"rental_rate_per_day"`
	RentalMRPPerDay    float64     `json:"rental_mrp_per_day,omitempty"`
	DiscountPercentage float64     `json:"discount_percentage,omitempty"`
	IsAvailable        bool        `json:"is_available,omitempty"`
	Category           string      `json:"category,omitempty"`
	ItemGroup          string      `json:"item_group,omitempty"`
	CautionDeposit     float64     `json:"caution_deposit,omitempty"`
}

// ItemImage is one image attached to a catalog item.
type ItemImage struct {
	Image     string `json:"image"`
	IsPrimary bool   `json:"is_primary,omitempty"`
}

// ItemsPage is one page of a catalog listing.
type ItemsPage struct {
	Items      []Item `json:"items"`
	TotalCount int    `json:"total_count"`
	HasMore    bool   `json:"has_more"`
}

// UnmarshalJSON accepts both the paged object form and the bare-array
// form older backend versions return.  A bare array counts itself and
// reports no further pages.
func (p *ItemsPage) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []Item
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		p.Items = items
		p.TotalCount = len(items)
		p.HasMore = false
		return nil
	}
	type page ItemsPage
	var raw page
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = ItemsPage(raw)
	return nil
}

// Availability is the backend's answer to an availability check for an
// item over a date range.
type Availability struct {
	IsAvailable bool   `json:"is_available"`
	Message     string `json:"message,omitempty"`
}

// Catalog sort orders accepted by the items listing.
const (
	SortByName      = "name"
	SortByPriceLow  = "price_low"
	SortByPriceHigh = "price_high"
	SortByNewest    = "newest"
	SortByRandom    = "random"
)
