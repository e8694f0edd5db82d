package booking

import (
	"context"

	bookingRepo "bookify/database/repository/booking"
	timeslotRepo "bookify/database/repository/timeslot"
	"bookify/models"
	"bookify/utils"
)

func (s *DefaultBookingService) Create(ctx context.Context, userID, serviceID, date, clock string) (*models.Booking, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, err
	}
	if _, err := utils.ParseClock(clock); err != nil {
		return nil, err
	}
	if serviceID == "" {
		return nil, utils.Validationf("service id is required")
	}

	providerID, exists, err := s.Catalog.ServiceExists(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, utils.NotFoundf("service %s does not exist", serviceID)
	}

	// An explicitly disabled slot is not selectable for new bookings.
	slot, err := s.Slots.GetByKey(ctx, providerID, date, clock)
	if err != nil && err != timeslotRepo.ErrNotFound {
		return nil, err
	}
	if slot != nil && !slot.IsAvailable {
		return nil, utils.Conflictf("time slot %s %s is not available", date, clock)
	}

	booking := &models.Booking{
		UserID:     userID,
		ProviderID: providerID,
		ServiceID:  serviceID,
		Date:       date,
		Time:       clock,
		Status:     models.BookingStatusPending,
	}
	// The partial unique index makes the conflict check and the insert
	// one atomic unit; a losing concurrent create fails fast here.
	if err := s.Repo.Create(ctx, booking); err != nil {
		if err == bookingRepo.ErrSlotTaken {
			return nil, utils.Conflictf("slot %s %s is already booked", date, clock)
		}
		return nil, err
	}

	// Creation deliberately emits no notification; only later status
	// transitions do.
	return booking, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, actorID, actorRole, bookingID string) (*models.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwnership(booking, actorID, actorRole); err != nil {
		return nil, err
	}

	// review_needed holds only until a review lands; reviews are
	// recorded outside this service, so reads reconcile the flag.
	if booking.ReviewNeeded && s.Reviews != nil {
		review, err := s.Reviews.GetByBookingID(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if review != nil {
			booking.ReviewNeeded = false
		}
	}
	return booking, nil
}

func (s *DefaultBookingService) ListForActor(ctx context.Context, actorID, actorRole, statusFilter string) ([]models.Booking, error) {
	field, err := ownerField(actorRole)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByOwner(ctx, field, actorID, statusFilter)
}

func (s *DefaultBookingService) Stats(ctx context.Context, actorID, actorRole string) (*models.BookingStats, error) {
	field, err := ownerField(actorRole)
	if err != nil {
		return nil, err
	}

	stats := &models.BookingStats{}
	counts := []struct {
		status string
		dest   *int64
	}{
		{models.BookingStatusPending, &stats.Pending},
		{models.BookingStatusConfirmed, &stats.Upcoming},
		{models.BookingStatusCompleted, &stats.Completed},
		{models.BookingStatusCanceled, &stats.Canceled},
	}
	for _, c := range counts {
		n, err := s.Repo.CountByOwner(ctx, field, actorID, c.status)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}
	return stats, nil
}

func (s *DefaultBookingService) Calendar(ctx context.Context, providerID, dateFrom, dateTo string) (map[string][]models.Booking, error) {
	if _, err := utils.ParseDate(dateFrom); err != nil {
		return nil, err
	}
	if _, err := utils.ParseDate(dateTo); err != nil {
		return nil, err
	}

	bookings, err := s.Repo.ListByProviderInRange(ctx, providerID, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]models.Booking)
	for _, b := range bookings {
		grouped[b.Date] = append(grouped[b.Date], b)
	}
	return grouped, nil
}

func (s *DefaultBookingService) load(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, utils.NotFoundf("booking %s does not exist", bookingID)
		}
		return nil, err
	}
	return booking, nil
}

func ensureOwnership(b *models.Booking, actorID, actorRole string) error {
	switch actorRole {
	case models.RoleUser:
		if b.UserID != actorID {
			return utils.Forbiddenf("booking %s does not belong to user %s", b.ID, actorID)
		}
	case models.RoleProvider:
		if b.ProviderID != actorID {
			return utils.Forbiddenf("booking %s does not belong to provider %s", b.ID, actorID)
		}
	default:
		return utils.Forbiddenf("unknown role %q", actorRole)
	}
	return nil
}

func ownerField(actorRole string) (string, error) {
	switch actorRole {
	case models.RoleUser:
		return bookingRepo.OwnerUser, nil
	case models.RoleProvider:
		return bookingRepo.OwnerProvider, nil
	}
	return "", utils.Forbiddenf("unknown role %q", actorRole)
}
