package domain

// Product is a catalog entry. Prices are stored in cents; formatting to a
// display string happens at the presentation boundary only.
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Offer is a promotional banner entry shown on the storefront home screen.
type Offer struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
	Image string `json:"image,omitempty"`
}
