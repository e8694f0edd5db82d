package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingRepo "bookify/database/repository/booking"
	"bookify/models"
	booking "bookify/services/booking"
	"bookify/utils"
)

// sweepStore is a minimal in-memory booking store shared by the sweeper
// and the ledger it drives.
type sweepStore struct {
	bookings map[string]*models.Booking
	notifs   []models.Notification
}

func newSweepStore(bookings ...*models.Booking) *sweepStore {
	s := &sweepStore{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		s.bookings[b.ID] = b
	}
	return s
}

func (s *sweepStore) Create(context.Context, *models.Booking) error { return nil }

func (s *sweepStore) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copy := *b
	return &copy, nil
}

func (s *sweepStore) GetActiveByKey(context.Context, string, string, string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (s *sweepStore) ListActiveByProviderAndDate(context.Context, string, string) ([]models.Booking, error) {
	return nil, nil
}

func (s *sweepStore) ListByStatus(_ context.Context, status string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *sweepStore) ListByOwner(context.Context, string, string, string) ([]models.Booking, error) {
	return nil, nil
}

func (s *sweepStore) ListByProviderInRange(context.Context, string, string, string) ([]models.Booking, error) {
	return nil, nil
}

func (s *sweepStore) CountByOwner(context.Context, string, string, string) (int64, error) {
	return 0, nil
}

func (s *sweepStore) TransitionTx(_ context.Context, bookingID string, fromStatuses []string, set map[string]interface{}, notif *models.Notification) (*models.Booking, error) {
	b, ok := s.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	matched := false
	for _, st := range fromStatuses {
		if b.Status == st {
			matched = true
			break
		}
	}
	if !matched {
		return nil, bookingRepo.ErrStatusChanged
	}
	if status, ok := set["status"].(string); ok {
		b.Status = status
	}
	if notif != nil {
		s.notifs = append(s.notifs, *notif)
	}
	copy := *b
	return &copy, nil
}

func (s *sweepStore) DeleteWithReviewTx(context.Context, string) error { return nil }

func (s *sweepStore) EnsureIndexes() error { return nil }

// memNotifs is the reminder store used for authoritative dedup.
type memNotifs struct {
	rows []models.Notification
}

func (n *memNotifs) Insert(_ context.Context, notif *models.Notification) error {
	n.rows = append(n.rows, *notif)
	return nil
}

func (n *memNotifs) ExistsByRelatedAndSubtype(_ context.Context, userID, relatedID, subtype string) (bool, error) {
	for _, row := range n.rows {
		if row.UserID == userID && row.RelatedID == relatedID && row.Subtype == subtype {
			return true, nil
		}
	}
	return false, nil
}

func (n *memNotifs) ListByUser(context.Context, string, bool) ([]models.Notification, error) {
	return n.rows, nil
}

func (n *memNotifs) MarkRead(context.Context, string, string) error { return nil }

func (n *memNotifs) EnsureIndexes() error { return nil }

type captureSink struct {
	payloads []models.PushPayload
}

func (s *captureSink) Emit(_ context.Context, payload models.PushPayload) {
	s.payloads = append(s.payloads, payload)
}

// The sweeper tests run against a frozen Wednesday morning.
var sweepNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.Local)

func newTestSweeper(store *sweepStore) (*Sweeper, *memNotifs, *captureSink) {
	notifs := &memNotifs{}
	sink := &captureSink{}
	clock := utils.FixedClock{Instant: sweepNow}
	ledger := &booking.DefaultBookingService{
		Repo:  store,
		Sink:  sink,
		Clock: clock,
	}
	sw := &Sweeper{
		Bookings: store,
		Ledger:   ledger,
		Notifs:   notifs,
		Sink:     sink,
		Clock:    clock,
		Logger:   zap.NewNop(),
		Grace:    time.Hour,
		Window:   time.Hour,
	}
	return sw, notifs, sink
}

func confirmedAt(id, date, clock string) *models.Booking {
	return &models.Booking{
		ID: id, UserID: "user-1", ProviderID: "prov-1",
		Date: date, Time: clock, Status: models.BookingStatusConfirmed,
	}
}

func TestTickPromotesOverdueToNoShow(t *testing.T) {
	store := newSweepStore(confirmedAt("bk-1", "2026-03-04", "08:00"))
	sw, _, sink := newTestSweeper(store)
	ctx := context.Background()

	sw.Tick(ctx)

	assert.Equal(t, models.BookingStatusNoShow, store.bookings["bk-1"].Status)
	require.Len(t, store.notifs, 1)
	assert.Equal(t, models.SubtypeNoShow, store.notifs[0].Subtype)
	require.Len(t, sink.payloads, 1)

	// A second pass finds no confirmed booking; exactly one event total.
	sw.Tick(ctx)
	assert.Len(t, store.notifs, 1)
	assert.Len(t, sink.payloads, 1)
}

func TestTickGraceBoundary(t *testing.T) {
	// Exactly one hour overdue is still within grace.
	store := newSweepStore(confirmedAt("bk-1", "2026-03-04", "09:00"))
	sw, notifs, sink := newTestSweeper(store)

	sw.Tick(context.Background())

	assert.Equal(t, models.BookingStatusConfirmed, store.bookings["bk-1"].Status)
	assert.Empty(t, store.notifs)
	assert.Empty(t, notifs.rows)
	assert.Empty(t, sink.payloads)
}

func TestTickRemindsUpcoming(t *testing.T) {
	store := newSweepStore(confirmedAt("bk-1", "2026-03-04", "10:30"))
	sw, notifs, sink := newTestSweeper(store)
	ctx := context.Background()

	sw.Tick(ctx)

	require.Len(t, notifs.rows, 1)
	assert.Equal(t, models.SubtypeReminder, notifs.rows[0].Subtype)
	assert.Equal(t, "bk-1", notifs.rows[0].RelatedID)
	require.Len(t, sink.payloads, 1)
	assert.Equal(t, "user-1", sink.payloads[0].RecipientID)

	// The booking stays confirmed and the reminder never repeats.
	sw.Tick(ctx)
	assert.Equal(t, models.BookingStatusConfirmed, store.bookings["bk-1"].Status)
	assert.Len(t, notifs.rows, 1)
	assert.Len(t, sink.payloads, 1)
}

func TestTickRemindsAtScheduledInstant(t *testing.T) {
	store := newSweepStore(confirmedAt("bk-1", "2026-03-04", "10:00"))
	sw, notifs, _ := newTestSweeper(store)

	sw.Tick(context.Background())

	require.Len(t, notifs.rows, 1)
	assert.Equal(t, models.SubtypeReminder, notifs.rows[0].Subtype)
}

func TestTickIgnoresDistantBookings(t *testing.T) {
	store := newSweepStore(confirmedAt("bk-1", "2026-03-04", "12:00"))
	sw, notifs, sink := newTestSweeper(store)

	sw.Tick(context.Background())

	assert.Equal(t, models.BookingStatusConfirmed, store.bookings["bk-1"].Status)
	assert.Empty(t, notifs.rows)
	assert.Empty(t, sink.payloads)
}

func TestStartStopsOnCancel(t *testing.T) {
	sw, _, _ := newTestSweeper(newSweepStore())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sw.Start(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancel")
	}
}

func TestTickIsolatesPerBookingFailures(t *testing.T) {
	store := newSweepStore(
		&models.Booking{ID: "bk-bad", UserID: "user-1", ProviderID: "prov-1",
			Date: "someday", Time: "soon", Status: models.BookingStatusConfirmed},
		confirmedAt("bk-2", "2026-03-04", "08:00"),
	)
	sw, _, _ := newTestSweeper(store)

	sw.Tick(context.Background())

	// The malformed booking is skipped, the overdue one still ages out.
	assert.Equal(t, models.BookingStatusNoShow, store.bookings["bk-2"].Status)
	assert.Equal(t, models.BookingStatusConfirmed, store.bookings["bk-bad"].Status)
}
