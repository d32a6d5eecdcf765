// Package notify implements the change-notification capability the stores
// expose so an observing UI layer can re-read derived state.
package notify

import "sync"

// Hub fans a change signal out to subscribed listeners. Listeners receive no
// payload; they are expected to re-read store state on notification.
type Hub struct {
	mu        sync.Mutex
	next      int
	listeners map[int]func()
}

// Subscribe registers fn and returns an unsubscribe function.
func (h *Hub) Subscribe(fn func()) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.listeners == nil {
		h.listeners = make(map[int]func())
	}
	id := h.next
	h.next++
	h.listeners[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners, id)
	}
}

// Notify invokes every subscribed listener. Callers must not hold locks that
// a listener could re-enter.
func (h *Hub) Notify() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
