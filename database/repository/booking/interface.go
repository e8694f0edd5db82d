// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no booking matches the requested id.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotTaken is returned when an insert loses the race for an
	// active (provider, date, time) key.
	ErrSlotTaken = errors.New("slot already held by an active booking")
	// ErrStatusChanged is returned when a transition's status
	// precondition no longer holds at commit time.
	ErrStatusChanged = errors.New("booking status changed concurrently")
)

type BookingRepository interface {
	// Create inserts a new booking. The partial unique index on
	// (provider_id, date, time) over active statuses rejects a second
	// active booking for the same key; losers get ErrSlotTaken.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetActiveByKey(ctx context.Context, providerID, date, clock string) (*models.Booking, error)
	ListActiveByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
	ListByStatus(ctx context.Context, status string) ([]models.Booking, error)
	ListByOwner(ctx context.Context, ownerField, ownerID, statusFilter string) ([]models.Booking, error)
	ListByProviderInRange(ctx context.Context, providerID, dateFrom, dateTo string) ([]models.Booking, error)
	CountByOwner(ctx context.Context, ownerField, ownerID, status string) (int64, error)
	// TransitionTx atomically moves a booking from one of fromStatuses to
	// the fields in set, inserting the optional notification row in the
	// same transaction. Returns ErrStatusChanged when the booking exists
	// but its status precondition fails.
	TransitionTx(ctx context.Context, bookingID string, fromStatuses []string, set map[string]interface{}, notif *models.Notification) (*models.Booking, error)
	// DeleteWithReviewTx removes the booking and any review referencing
	// it as one transaction.
	DeleteWithReviewTx(ctx context.Context, bookingID string) error
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll       *mongo.Collection
	notifColl  *mongo.Collection
	reviewColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		coll:       db.Collection("bookings"),
		notifColl:  db.Collection("notifications"),
		reviewColl: db.Collection("reviews"),
	}
}

// Owner fields accepted by ListByOwner and CountByOwner.
const (
	OwnerUser     = "user_id"
	OwnerProvider = "provider_id"
)
