// File: database/repository/timeslot/interface.go
package timeslotRepo

import (
	"context"
	"errors"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no slot row matches the requested key.
var ErrNotFound = errors.New("timeslot not found")

type TimeSlotRepository interface {
	// Upsert creates or overwrites the row for (provider, date, time) and
	// reports whether a new row was created.
	Upsert(ctx context.Context, slot models.TimeSlot) (bool, error)
	GetByKey(ctx context.Context, providerID, date, clock string) (*models.TimeSlot, error)
	GetByProviderAndDate(ctx context.Context, providerID, date string) ([]models.TimeSlot, error)
	// GetByProviderInRange returns rows in [dateFrom, dateTo] ordered by
	// date then time.
	GetByProviderInRange(ctx context.Context, providerID, dateFrom, dateTo string) ([]models.TimeSlot, error)
	DeleteByKey(ctx context.Context, providerID, date, clock string) error
	EnsureIndexes() error
}

type mongoTimeSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoTimeSlotRepo constructs a new MongoDB TimeSlotRepository.
func NewMongoTimeSlotRepo() TimeSlotRepository {
	return &mongoTimeSlotRepo{
		coll: database.DB().Collection("timeslots"),
	}
}
