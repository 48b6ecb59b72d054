package domain

import "time"

// MinReviewCommentLength is the shortest comment a review may carry.
const MinReviewCommentLength = 10

const (
	MinRating = 1
	MaxRating = 5
)

// Review is an immutable customer review. New reviews are prepended to the
// review store so listings are newest-first.
type Review struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
}
