package jsonfile

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
)

const ordersFile = "orders.json"

type OrderRepository struct {
	path string
	mu   sync.Mutex
}

func NewOrderRepository(dir string) *OrderRepository {
	return &OrderRepository{
		path: filepath.Join(dir, ordersFile),
	}
}

// List returns all orders, oldest first.
func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return load[domain.Order](r.path), nil
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, order := range load[domain.Order](r.path) {
		if order.ID == id {
			return &order, nil
		}
	}

	return nil, domain.ErrNotFound
}

// Append adds the order to the end of the list and rewrites the file. The
// read-modify-write runs under the repository lock so concurrent sessions
// cannot drop each other's orders.
func (r *OrderRepository) Append(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders := load[domain.Order](r.path)
	orders = append(orders, *order)

	return persist(r.path, orders)
}
