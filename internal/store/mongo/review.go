package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const reviewsCollection = "reviews"

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{
		collection: db.Collection(reviewsCollection),
	}
}

type reviewDoc struct {
	ID           string    `bson:"_id"`
	CustomerName string    `bson:"customer_name"`
	Rating       int       `bson:"rating"`
	Comment      string    `bson:"comment"`
	CreatedAt    time.Time `bson:"created_at"`
}

// List returns reviews newest-first, the same ordering the prepend-based
// file store keeps.
func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []reviewDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	reviews := make([]domain.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, domain.Review{
			ID:           doc.ID,
			CustomerName: doc.CustomerName,
			Rating:       doc.Rating,
			Comment:      doc.Comment,
			CreatedAt:    doc.CreatedAt,
		})
	}

	return reviews, nil
}

func (r *ReviewRepository) Prepend(ctx context.Context, review *domain.Review) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	doc := reviewDoc{
		ID:           review.ID,
		CustomerName: review.CustomerName,
		Rating:       review.Rating,
		Comment:      review.Comment,
		CreatedAt:    review.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to prepend review: %w", err)
	}

	return nil
}
