// Package session keeps per-session carts in memory. Carts are transient by
// design: only completed orders and reviews are durable.
package session

import (
	"sync"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
)

// Manager maps session ids to carts. The lock guards the map only; a single
// interactive user owns each cart, so cart mutations are not serialized
// beyond that.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewManager() *Manager {
	return &Manager{
		carts: make(map[string]*domain.Cart),
	}
}

// Cart returns the cart for a session, creating an empty one on first use.
func (m *Manager) Cart(sessionID string) *domain.Cart {
	m.mu.RLock()
	cart, ok := m.carts[sessionID]
	m.mu.RUnlock()
	if ok {
		return cart
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cart, ok := m.carts[sessionID]; ok {
		return cart
	}
	cart = domain.NewCart()
	m.carts[sessionID] = cart
	return cart
}

// Drop forgets a session's cart entirely.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}
