// File: database/repository/review/review.go
package reviewRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookify/database"
	"bookify/models"
)

// ReviewRepository covers the review linkage the booking engine needs.
// Review creation and aggregation live outside this service.
type ReviewRepository interface {
	// GetByBookingID returns nil, nil when no review references the booking.
	GetByBookingID(ctx context.Context, bookingID string) (*models.Review, error)
	DeleteByBookingID(ctx context.Context, bookingID string) (int64, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo constructs a new MongoDB ReviewRepository.
func NewMongoReviewRepo() ReviewRepository {
	return &mongoReviewRepo{
		coll: database.DB().Collection("reviews"),
	}
}

func (r *mongoReviewRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var review models.Review
	err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *mongoReviewRepo) DeleteByBookingID(ctx context.Context, bookingID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
