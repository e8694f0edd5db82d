package availability

import (
	"context"
	"sort"

	bookingRepo "bookify/database/repository/booking"
	timeslotRepo "bookify/database/repository/timeslot"
	"bookify/models"
)

type memSlotRepo struct {
	rows map[string]models.TimeSlot
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{rows: map[string]models.TimeSlot{}}
}

func slotKey(providerID, date, clock string) string {
	return providerID + "|" + date + "|" + clock
}

func (r *memSlotRepo) Upsert(_ context.Context, slot models.TimeSlot) (bool, error) {
	key := slotKey(slot.ProviderID, slot.Date, slot.Time)
	_, exists := r.rows[key]
	r.rows[key] = slot
	return !exists, nil
}

func (r *memSlotRepo) GetByKey(_ context.Context, providerID, date, clock string) (*models.TimeSlot, error) {
	slot, ok := r.rows[slotKey(providerID, date, clock)]
	if !ok {
		return nil, timeslotRepo.ErrNotFound
	}
	return &slot, nil
}

func (r *memSlotRepo) GetByProviderAndDate(_ context.Context, providerID, date string) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, slot := range r.rows {
		if slot.ProviderID == providerID && slot.Date == date {
			out = append(out, slot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (r *memSlotRepo) GetByProviderInRange(_ context.Context, providerID, dateFrom, dateTo string) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, slot := range r.rows {
		if slot.ProviderID == providerID && slot.Date >= dateFrom && slot.Date <= dateTo {
			out = append(out, slot)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (r *memSlotRepo) DeleteByKey(_ context.Context, providerID, date, clock string) error {
	key := slotKey(providerID, date, clock)
	if _, ok := r.rows[key]; !ok {
		return timeslotRepo.ErrNotFound
	}
	delete(r.rows, key)
	return nil
}

func (r *memSlotRepo) EnsureIndexes() error { return nil }

// stubBookings exposes a fixed set of active bookings to the
// availability derivation.
type stubBookings struct {
	active []models.Booking
}

func (r *stubBookings) GetActiveByKey(_ context.Context, providerID, date, clock string) (*models.Booking, error) {
	for i := range r.active {
		b := r.active[i]
		if b.ProviderID == providerID && b.Date == date && b.Time == clock && models.IsActiveStatus(b.Status) {
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *stubBookings) ListActiveByProviderAndDate(_ context.Context, providerID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.active {
		if b.ProviderID == providerID && b.Date == date && models.IsActiveStatus(b.Status) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBookings) Create(context.Context, *models.Booking) error { return nil }

func (r *stubBookings) GetByID(context.Context, string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *stubBookings) ListByStatus(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubBookings) ListByOwner(context.Context, string, string, string) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubBookings) ListByProviderInRange(context.Context, string, string, string) ([]models.Booking, error) {
	return nil, nil
}

func (r *stubBookings) CountByOwner(context.Context, string, string, string) (int64, error) {
	return 0, nil
}

func (r *stubBookings) TransitionTx(context.Context, string, []string, map[string]interface{}, *models.Notification) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *stubBookings) DeleteWithReviewTx(context.Context, string) error {
	return bookingRepo.ErrNotFound
}

func (r *stubBookings) EnsureIndexes() error { return nil }
