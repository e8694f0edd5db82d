package booking

import (
	"context"

	bookingRepo "bookify/database/repository/booking"
	reviewRepo "bookify/database/repository/review"
	timeslotRepo "bookify/database/repository/timeslot"
	"bookify/models"
	"bookify/services/catalog"
	"bookify/services/notification"
	"bookify/utils"
)

// BookingService owns booking records and their status state machine.
// All transitions are monotonic along the graph
//
//	pending   -> confirmed | rejected | canceled
//	confirmed -> completed | canceled | no-show
//
// and every transition persists the status change together with its
// notification record in one transaction.
type BookingService interface {
	Create(ctx context.Context, userID, serviceID, date, clock string) (*models.Booking, error)
	GetByID(ctx context.Context, actorID, actorRole, bookingID string) (*models.Booking, error)
	ListForActor(ctx context.Context, actorID, actorRole, statusFilter string) ([]models.Booking, error)
	Stats(ctx context.Context, actorID, actorRole string) (*models.BookingStats, error)
	// Calendar groups a provider's bookings in [dateFrom, dateTo] by date.
	Calendar(ctx context.Context, providerID, dateFrom, dateTo string) (map[string][]models.Booking, error)

	Accept(ctx context.Context, providerID, bookingID string) (*models.Booking, error)
	Reject(ctx context.Context, providerID, bookingID, reason, message string) (*models.Booking, error)
	Cancel(ctx context.Context, actorID, actorRole, bookingID string) (*models.Booking, error)
	// UpdateStatus is the generic status entry point; it dispatches to
	// the specific transition for the requested target status.
	UpdateStatus(ctx context.Context, actorID, actorRole, bookingID, target string) (*models.Booking, error)
	// PromoteNoShow ages a confirmed booking out; reserved for the
	// reconciliation sweeper.
	PromoteNoShow(ctx context.Context, bookingID string) (*models.Booking, error)
	PermanentDelete(ctx context.Context, actorID, actorRole, bookingID string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo    bookingRepo.BookingRepository
	Slots   timeslotRepo.TimeSlotRepository
	Catalog catalog.CatalogService
	Reviews reviewRepo.ReviewRepository // optional; refines the review_needed flag on reads
	Sink    notification.Sink
	Clock   utils.Clock
}
