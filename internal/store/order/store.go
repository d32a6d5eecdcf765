// Package order owns the list of placed orders. The list is append-only;
// only the status of an existing order may change.
package order

import (
	"sync"

	"storefront/internal/domain"
	"storefront/internal/notify"
)

// Store holds placed orders in placement order.
type Store struct {
	mu     sync.Mutex
	orders []domain.Order
	hub    notify.Hub
}

// New returns an empty order store.
func New() *Store {
	return &Store{}
}

// Subscribe registers a change listener and returns an unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	return s.hub.Subscribe(fn)
}

// Add appends the order. The caller (checkout) is responsible for
// constructing a valid order; no dedup or shape validation happens here.
func (s *Store) Add(o domain.Order) {
	s.mu.Lock()
	s.orders = append(s.orders, o)
	s.mu.Unlock()
	s.hub.Notify()
}

// UpdateStatus replaces the status of the order with the given id. Unknown
// ids are a no-op. No transition ordering is enforced, but the status must
// be one of the known values.
func (s *Store) UpdateStatus(orderID string, status domain.OrderStatus) bool {
	if !domain.ValidOrderStatus(status) {
		return false
	}
	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.mu.Unlock()
			s.hub.Notify()
			return true
		}
	}
	s.mu.Unlock()
	return false
}

// Get returns the order with the given id, or domain.ErrNotFound.
func (s *Store) Get(orderID string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			return cloneOrder(o), nil
		}
	}
	return domain.Order{}, domain.ErrNotFound
}

// Orders returns a copy of the order list.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = cloneOrder(o)
	}
	return out
}

// cloneOrder copies the order including its item slice, so callers cannot
// reach the stored backing array.
func cloneOrder(o domain.Order) domain.Order {
	items := make([]domain.CartItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
