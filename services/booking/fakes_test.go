package booking

import (
	"context"
	"fmt"

	bookingRepo "bookify/database/repository/booking"
	timeslotRepo "bookify/database/repository/timeslot"
	"bookify/models"
)

// memBookingRepo mimics the MongoDB booking store, including the
// partial unique index over active (provider, date, time) keys and the
// CAS semantics of TransitionTx.
type memBookingRepo struct {
	bookings map[string]*models.Booking
	notifs   []models.Notification
	reviews  map[string]int // booking id -> review count
	seq      int
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{
		bookings: map[string]*models.Booking{},
		reviews:  map[string]int{},
	}
}

func (r *memBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	for _, b := range r.bookings {
		if b.ProviderID == booking.ProviderID && b.Date == booking.Date &&
			b.Time == booking.Time && models.IsActiveStatus(b.Status) {
			return bookingRepo.ErrSlotTaken
		}
	}
	r.seq++
	booking.ID = fmt.Sprintf("bk-%d", r.seq)
	stored := *booking
	r.bookings[booking.ID] = &stored
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copy := *b
	return &copy, nil
}

func (r *memBookingRepo) GetActiveByKey(_ context.Context, providerID, date, clock string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date && b.Time == clock && models.IsActiveStatus(b.Status) {
			copy := *b
			return &copy, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *memBookingRepo) ListActiveByProviderAndDate(_ context.Context, providerID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date && models.IsActiveStatus(b.Status) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByStatus(_ context.Context, status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByOwner(_ context.Context, ownerField, ownerID, statusFilter string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if r.owner(b, ownerField) != ownerID {
			continue
		}
		if statusFilter != "" && b.Status != statusFilter {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *memBookingRepo) ListByProviderInRange(_ context.Context, providerID, dateFrom, dateTo string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date >= dateFrom && b.Date <= dateTo {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) CountByOwner(_ context.Context, ownerField, ownerID, status string) (int64, error) {
	var n int64
	for _, b := range r.bookings {
		if r.owner(b, ownerField) == ownerID && b.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memBookingRepo) TransitionTx(_ context.Context, bookingID string, fromStatuses []string, set map[string]interface{}, notif *models.Notification) (*models.Booking, error) {
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	matched := false
	for _, s := range fromStatuses {
		if b.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return nil, bookingRepo.ErrStatusChanged
	}

	for field, value := range set {
		switch field {
		case "status":
			b.Status = value.(string)
		case "review_needed":
			b.ReviewNeeded = value.(bool)
		case "reject_reason":
			b.RejectReason = value.(string)
		case "reject_message":
			b.RejectMessage = value.(string)
		}
	}
	if notif != nil {
		r.notifs = append(r.notifs, *notif)
	}
	copy := *b
	return &copy, nil
}

func (r *memBookingRepo) DeleteWithReviewTx(_ context.Context, bookingID string) error {
	if _, ok := r.bookings[bookingID]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(r.bookings, bookingID)
	delete(r.reviews, bookingID)
	return nil
}

func (r *memBookingRepo) EnsureIndexes() error { return nil }

func (r *memBookingRepo) owner(b *models.Booking, field string) string {
	if field == bookingRepo.OwnerProvider {
		return b.ProviderID
	}
	return b.UserID
}

// notifSubtypes lists the subtypes of the notifications recorded with
// transitions, in insertion order.
func (r *memBookingRepo) notifSubtypes() []string {
	var out []string
	for _, n := range r.notifs {
		out = append(out, n.Subtype)
	}
	return out
}

// stubCatalog resolves service ids from a fixed map.
type stubCatalog struct {
	services map[string]string // service id -> provider id
}

func (c *stubCatalog) ServiceExists(_ context.Context, serviceID string) (string, bool, error) {
	providerID, ok := c.services[serviceID]
	return providerID, ok, nil
}

func (c *stubCatalog) GetService(_ context.Context, serviceID string) (*models.Service, error) {
	providerID, ok := c.services[serviceID]
	if !ok {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}
	return &models.Service{ID: serviceID, ProviderID: providerID}, nil
}

func (c *stubCatalog) ListProviderServices(context.Context, string) ([]models.Service, error) {
	return nil, nil
}

// captureSink records every push payload it is handed.
type captureSink struct {
	payloads []models.PushPayload
}

func (s *captureSink) Emit(_ context.Context, payload models.PushPayload) {
	s.payloads = append(s.payloads, payload)
}

// stubSlots serves explicit slot rows to the create-time disabled-slot
// check.
type stubSlots struct {
	rows map[string]models.TimeSlot // "date time" -> row
}

func (s *stubSlots) Upsert(context.Context, models.TimeSlot) (bool, error) { return false, nil }

func (s *stubSlots) GetByKey(_ context.Context, _, date, clock string) (*models.TimeSlot, error) {
	row, ok := s.rows[date+" "+clock]
	if !ok {
		return nil, timeslotRepo.ErrNotFound
	}
	return &row, nil
}

func (s *stubSlots) GetByProviderAndDate(context.Context, string, string) ([]models.TimeSlot, error) {
	return nil, nil
}

func (s *stubSlots) GetByProviderInRange(context.Context, string, string, string) ([]models.TimeSlot, error) {
	return nil, nil
}

func (s *stubSlots) DeleteByKey(context.Context, string, string, string) error { return nil }

func (s *stubSlots) EnsureIndexes() error { return nil }

// stubReviews reports a review as recorded for the listed booking ids.
type stubReviews struct {
	recorded map[string]bool
}

func (r *stubReviews) GetByBookingID(_ context.Context, bookingID string) (*models.Review, error) {
	if r.recorded[bookingID] {
		return &models.Review{ID: "rv-" + bookingID, BookingID: bookingID}, nil
	}
	return nil, nil
}

func (r *stubReviews) DeleteByBookingID(_ context.Context, bookingID string) (int64, error) {
	if r.recorded[bookingID] {
		delete(r.recorded, bookingID)
		return 1, nil
	}
	return 0, nil
}
