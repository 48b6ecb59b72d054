package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/Raguramgit/retro-restaurant/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService struct {
	reviews repo.ReviewRepository
	logger  *zap.SugaredLogger
}

func NewReviewService(reviews repo.ReviewRepository, logger *zap.SugaredLogger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		logger:  logger,
	}
}

// Submit validates and records a review. Like checkout, a store write
// failure is logged but does not fail the submission.
func (s *ReviewService) Submit(ctx context.Context, customerName string, rating int, comment string) (*domain.Review, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, domain.NewValidationError("customerName", "name is required")
	}
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, domain.NewValidationError("rating", fmt.Sprintf("rating must be between %d and %d", domain.MinRating, domain.MaxRating))
	}
	if len(comment) < domain.MinReviewCommentLength {
		return nil, domain.NewValidationError("comment", fmt.Sprintf("comment must be at least %d characters long", domain.MinReviewCommentLength))
	}

	review := domain.Review{
		ID:           uuid.NewString(),
		CustomerName: customerName,
		Rating:       rating,
		Comment:      comment,
		CreatedAt:    time.Now(),
	}

	if err := s.reviews.Prepend(ctx, &review); err != nil {
		s.logger.Warnw("failed to persist review, continuing", "review_id", review.ID, "error", err)
	}

	s.logger.Infow("review submitted", "review_id", review.ID, "rating", review.Rating)

	return &review, nil
}

// List returns reviews newest-first.
func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviews.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// ReviewSummary is the aggregate shown above the review list.
type ReviewSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// Summarize computes the average rating over a review list.
func Summarize(reviews []domain.Review) ReviewSummary {
	if len(reviews) == 0 {
		return ReviewSummary{}
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	return ReviewSummary{
		AverageRating: float64(sum) / float64(len(reviews)),
		TotalReviews:  len(reviews),
	}
}
