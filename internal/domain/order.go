package domain

import "time"

// OrderStatus is the delivery status of a placed order.
type OrderStatus string

const (
	StatusOnProcess      OrderStatus = "On Process"
	StatusOnTransit      OrderStatus = "On-Transit"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusOnProcess, StatusOnTransit, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// Order is created at checkout from a cart snapshot. Items and totals are
// fixed at creation time; only the status may change afterwards.
type Order struct {
	ID         string      `json:"id"`
	Items      []CartItem  `json:"items"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"totalCents"`
	Date       time.Time   `json:"date"`
}
