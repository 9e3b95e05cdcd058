package model

// Banner is a home-screen promotional slide.  Banners rotate on a fixed
// cosmetic interval; ordering comes from Priority.
type Banner struct {
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Image    string `json:"image"`
	Link     string `json:"link,omitempty"`
	Priority int    `json:"priority,omitempty"`
}

// Category is a browsable item grouping shown on the storefront.
type Category struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Image     string `json:"image,omitempty"`
	Icon      string `json:"icon,omitempty"`
	ItemCount int    `json:"item_count,omitempty"`
}
