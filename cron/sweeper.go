package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	bookingRepo "bookify/database/repository/booking"
	notificationRepo "bookify/database/repository/notification"
	"bookify/models"
	booking "bookify/services/booking"
	"bookify/services/notification"
	"bookify/utils"
)

// Sweeper is the periodic reconciliation process over confirmed
// bookings: overdue ones are promoted to no-show, imminent ones get a
// deduplicated reminder. Tick is callable on its own so tests can drive
// it with a frozen clock.
type Sweeper struct {
	Bookings bookingRepo.BookingRepository
	Ledger   booking.BookingService
	Notifs   notificationRepo.NotificationRepository
	Sink     notification.Sink
	Cache    *redis.Client // optional fast-path dedup; nil falls back to the store
	Clock    utils.Clock
	Logger   *zap.Logger

	// Grace is how long past its scheduled time a confirmed booking may
	// sit before it is promoted to no-show.
	Grace time.Duration
	// Window is how far ahead of the scheduled time a reminder fires.
	Window time.Duration
}

// Start runs the sweep loop until the context is canceled.
func (s *Sweeper) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Logger.Info("sweeper: started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			s.Logger.Info("sweeper: shutdown signal received")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one reconciliation pass. A failure on one booking is logged
// and never stops the rest of the pass.
func (s *Sweeper) Tick(ctx context.Context) {
	confirmed, err := s.Bookings.ListByStatus(ctx, models.BookingStatusConfirmed)
	if err != nil {
		s.Logger.Error("sweeper: failed to list confirmed bookings", zap.Error(err))
		return
	}

	now := s.Clock.Now()
	for i := range confirmed {
		if err := s.reconcile(ctx, now, &confirmed[i]); err != nil {
			s.Logger.Warn("sweeper: booking reconcile failed",
				zap.String("bookingId", confirmed[i].ID), zap.Error(err))
		}
	}
}

func (s *Sweeper) reconcile(ctx context.Context, now time.Time, b *models.Booking) error {
	scheduled, err := b.ScheduledAt()
	if err != nil {
		return err
	}

	switch {
	case now.Sub(scheduled) > s.Grace:
		_, err := s.Ledger.PromoteNoShow(ctx, b.ID)
		// Someone else already moved the booking on; nothing to do.
		if utils.ErrorKind(err) == utils.KindInvalidState {
			return nil
		}
		return err
	case scheduled.Sub(now) >= 0 && scheduled.Sub(now) <= s.Window:
		return s.remind(ctx, b, scheduled.Sub(now))
	}
	return nil
}

func (s *Sweeper) remind(ctx context.Context, b *models.Booking, until time.Duration) error {
	dedupKey := utils.ReminderDedupPrefix + b.ID

	if s.Cache != nil {
		seen, err := s.Cache.Exists(ctx, dedupKey).Result()
		if err == nil && seen > 0 {
			return nil
		}
		// On a cache error fall through to the authoritative store.
	}

	exists, err := s.Notifs.ExistsByRelatedAndSubtype(ctx, b.UserID, b.ID, models.SubtypeReminder)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	notif := &models.Notification{
		UserID:    b.UserID,
		Type:      models.NotificationTypeBooking,
		Subtype:   models.SubtypeReminder,
		Title:     "Booking starting soon",
		Content:   fmt.Sprintf("Your booking scheduled for %s %s starts in %d minutes.", b.Date, b.Time, int(until.Minutes())),
		RelatedID: b.ID,
	}
	if err := s.Notifs.Insert(ctx, notif); err != nil {
		return err
	}

	s.Sink.Emit(ctx, models.PushPayload{
		RecipientID: b.UserID,
		Title:       notif.Title,
		Body:        notif.Content,
		Data: map[string]string{
			"type":      notif.Type,
			"subtype":   notif.Subtype,
			"relatedId": b.ID,
		},
	})

	if s.Cache != nil {
		if err := s.Cache.SetNX(ctx, dedupKey, "1", utils.ReminderDedupTTL).Err(); err != nil {
			s.Logger.Debug("sweeper: reminder dedup cache write failed",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
	}
	return nil
}
