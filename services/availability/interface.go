package availability

import (
	"context"

	bookingRepo "bookify/database/repository/booking"
	timeslotRepo "bookify/database/repository/timeslot"
	"bookify/models"
	"bookify/utils"
)

// AvailabilityService owns provider time-slot records and the
// customer-facing availability derivation.
type AvailabilityService interface {
	UpsertSlot(ctx context.Context, providerID string, entry models.SlotEntry) (*models.TimeSlot, error)
	// BulkUpsert applies each entry in order; the last entry wins on
	// duplicate (date, time) keys within the same call.
	BulkUpsert(ctx context.Context, providerID string, entries []models.SlotEntry) (*models.BulkUpsertResult, error)
	QueryRange(ctx context.Context, providerID, dateFrom, dateTo string) ([]models.TimeSlot, error)
	// DeleteSlot refuses to remove a slot held by an active booking.
	DeleteSlot(ctx context.Context, providerID, date, clock string) error
	// AvailableTimes derives the bookable times for one provider date.
	AvailableTimes(ctx context.Context, providerID, date string) (*models.DayAvailability, error)
	// BookingForSlot returns the active booking occupying a slot, if any.
	BookingForSlot(ctx context.Context, providerID, date, clock string) (*models.Booking, error)
	// ApplyPattern bulk-generates slot rows from a recurring weekday rule.
	ApplyPattern(ctx context.Context, providerID string, pattern models.WorkingPattern) (*models.PatternResult, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Slots    timeslotRepo.TimeSlotRepository
	Bookings bookingRepo.BookingRepository
	Clock    utils.Clock
}
