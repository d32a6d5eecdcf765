// Package checkout coordinates the session, cart, and order stores: it is
// the only component that reads across all three, and the only one that
// turns a cart into an order.
package checkout

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain"
)

var (
	// ErrNotAuthenticated is returned when no user is logged in. The UI
	// redirects to login on this.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrEmptyCart is returned when there is nothing to order.
	ErrEmptyCart = errors.New("cart is empty")
)

// ShippingInfo are the required delivery fields collected at checkout.
type ShippingInfo struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type sessionReader interface {
	IsAuthenticated() bool
}

type cartAccess interface {
	Items() []domain.CartItem
	Clear()
}

type orderWriter interface {
	Add(domain.Order)
}

// Service validates checkout preconditions and places orders.
type Service struct {
	session       sessionReader
	cart          cartAccess
	orders        orderWriter
	shippingCents int64
	logger        *log.Logger
	now           func() time.Time
}

// New builds a checkout service with a flat shipping cost in cents.
func New(session sessionReader, cart cartAccess, orders orderWriter, shippingCents int64, logger *log.Logger) *Service {
	return &Service{
		session:       session,
		cart:          cart,
		orders:        orders,
		shippingCents: shippingCents,
		logger:        logger,
		now:           time.Now,
	}
}

// PlaceOrder checks preconditions, snapshots the cart into a new order with
// status "On Process", appends it, and clears the cart. The order is
// appended before the cart is cleared so a failure can never lose the cart
// without a durable order.
func (s *Service) PlaceOrder(info ShippingInfo) (*domain.Order, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(info.Address) == "" ||
		strings.TrimSpace(info.City) == "" ||
		strings.TrimSpace(info.PostalCode) == "" {
		return nil, errors.New("shipping address, city, and postal code are required")
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal int64
	for _, it := range items {
		subtotal += it.TotalCents()
	}

	now := s.now().UTC()
	order := domain.Order{
		ID:         strconv.FormatInt(now.UnixMilli(), 10),
		Items:      items,
		Status:     domain.StatusOnProcess,
		TotalCents: subtotal + s.shippingCents,
		Date:       now,
	}

	s.orders.Add(order)
	s.cart.Clear()
	s.logger.Printf("order %s placed: %d items, total %d cents", order.ID, len(order.Items), order.TotalCents)
	return &order, nil
}

// ShippingCents exposes the flat shipping cost for display.
func (s *Service) ShippingCents() int64 {
	return s.shippingCents
}
