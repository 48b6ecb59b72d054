package repo

import (
	"context"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
)

// OrderRepository is the durable order list. Orders are append-only: List
// returns them oldest-first, Append adds to the end, nothing updates or
// deletes.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Append(ctx context.Context, order *domain.Order) error
}
