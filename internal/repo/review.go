package repo

import (
	"context"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
)

// ReviewRepository is the durable review list, kept newest-first: Prepend
// puts a review at the head and List returns that ordering.
type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Prepend(ctx context.Context, review *domain.Review) error
}
