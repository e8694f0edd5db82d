package availability

import (
	"context"

	bookingRepo "bookify/database/repository/booking"
	timeslotRepo "bookify/database/repository/timeslot"
	"bookify/models"
	"bookify/utils"
)

func (s *DefaultAvailabilityService) UpsertSlot(ctx context.Context, providerID string, entry models.SlotEntry) (*models.TimeSlot, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	slot := models.TimeSlot{
		ProviderID:  providerID,
		Date:        entry.Date,
		Time:        entry.Time,
		IsAvailable: entry.Available,
	}
	if _, err := s.Slots.Upsert(ctx, slot); err != nil {
		return nil, err
	}
	return s.Slots.GetByKey(ctx, providerID, entry.Date, entry.Time)
}

func (s *DefaultAvailabilityService) BulkUpsert(ctx context.Context, providerID string, entries []models.SlotEntry) (*models.BulkUpsertResult, error) {
	result := &models.BulkUpsertResult{}
	for _, entry := range entries {
		if err := validateEntry(entry); err != nil {
			result.Failed++
			continue
		}
		created, err := s.Slots.Upsert(ctx, models.TimeSlot{
			ProviderID:  providerID,
			Date:        entry.Date,
			Time:        entry.Time,
			IsAvailable: entry.Available,
		})
		if err != nil {
			return nil, err
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}
	return result, nil
}

func (s *DefaultAvailabilityService) QueryRange(ctx context.Context, providerID, dateFrom, dateTo string) ([]models.TimeSlot, error) {
	if _, err := utils.ParseDate(dateFrom); err != nil {
		return nil, err
	}
	if _, err := utils.ParseDate(dateTo); err != nil {
		return nil, err
	}
	return s.Slots.GetByProviderInRange(ctx, providerID, dateFrom, dateTo)
}

func (s *DefaultAvailabilityService) DeleteSlot(ctx context.Context, providerID, date, clock string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return err
	}
	if _, err := utils.ParseClock(clock); err != nil {
		return err
	}

	if _, err := s.Slots.GetByKey(ctx, providerID, date, clock); err != nil {
		if err == timeslotRepo.ErrNotFound {
			return utils.NotFoundf("time slot %s %s does not exist", date, clock)
		}
		return err
	}

	// Never pull a slot out from under a live booking.
	if _, err := s.Bookings.GetActiveByKey(ctx, providerID, date, clock); err == nil {
		return utils.Conflictf("time slot %s %s is held by an active booking", date, clock)
	} else if err != bookingRepo.ErrNotFound {
		return err
	}

	return s.Slots.DeleteByKey(ctx, providerID, date, clock)
}

func (s *DefaultAvailabilityService) BookingForSlot(ctx context.Context, providerID, date, clock string) (*models.Booking, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, err
	}
	booking, err := s.Bookings.GetActiveByKey(ctx, providerID, date, clock)
	if err != nil {
		if err == bookingRepo.ErrNotFound {
			return nil, utils.NotFoundf("no active booking for slot %s %s", date, clock)
		}
		return nil, err
	}
	return booking, nil
}

func validateEntry(entry models.SlotEntry) error {
	if _, err := utils.ParseDate(entry.Date); err != nil {
		return err
	}
	if _, err := utils.ParseClock(entry.Time); err != nil {
		return err
	}
	return nil
}
