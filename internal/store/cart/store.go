// Package cart owns the mutable list of line items selected pre-checkout.
package cart

import (
	"sync"

	"storefront/internal/domain"
	"storefront/internal/notify"
)

// Store keeps line items unique by product id, in insertion order.
// Item fields are frozen at first insertion; re-adding a changed product
// only bumps the quantity.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem
	hub   notify.Hub
}

// New returns an empty cart.
func New() *Store {
	return &Store{}
}

// Subscribe registers a change listener and returns an unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	return s.hub.Subscribe(fn)
}

// Add inserts the product with qty 1, or increments the existing line.
func (s *Store) Add(p domain.Product) {
	s.mu.Lock()
	if i := s.index(p.ID); i >= 0 {
		s.items[i].Qty++
	} else {
		s.items = append(s.items, domain.CartItem{Product: p, Qty: 1})
	}
	s.mu.Unlock()
	s.hub.Notify()
}

// Remove deletes the line entirely regardless of quantity. No-op if absent.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.mu.Unlock()
	s.hub.Notify()
}

// DecreaseQty decrements the line's quantity. A quantity of 1 is a floor:
// the line stays at 1 and is never auto-removed. No-op if absent.
func (s *Store) DecreaseQty(id string) {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 || s.items[i].Qty <= 1 {
		s.mu.Unlock()
		return
	}
	s.items[i].Qty--
	s.mu.Unlock()
	s.hub.Notify()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.hub.Notify()
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalQuantity is the sum of quantities over all lines.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Qty
	}
	return total
}

// TotalCents is the sum of price*qty over all lines.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.TotalCents()
	}
	return total
}

// index must be called with the lock held.
func (s *Store) index(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
