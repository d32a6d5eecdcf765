package domain

// CartItem is a product plus the quantity selected. Qty is never below 1;
// the item fields are frozen at first insertion.
type CartItem struct {
	Product
	Qty int `json:"qty"`
}

// TotalCents returns the line total for this item.
func (i CartItem) TotalCents() int64 {
	return i.PriceCents * int64(i.Qty)
}
