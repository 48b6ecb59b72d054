package jsonfile

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
)

const reviewsFile = "reviews.json"

type ReviewRepository struct {
	path string
	mu   sync.Mutex
}

func NewReviewRepository(dir string) *ReviewRepository {
	return &ReviewRepository{
		path: filepath.Join(dir, reviewsFile),
	}
}

// List returns all reviews, newest first.
func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return load[domain.Review](r.path), nil
}

// Prepend puts the review at the head of the list and rewrites the file.
func (r *ReviewRepository) Prepend(ctx context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews := load[domain.Review](r.path)
	reviews = append([]domain.Review{*review}, reviews...)

	return persist(r.path, reviews)
}
