package booking

import (
	"context"
	"fmt"

	bookingRepo "bookify/database/repository/booking"
	"bookify/models"
	"bookify/utils"
)

func (s *DefaultBookingService) Accept(ctx context.Context, providerID, bookingID string) (*models.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwnership(booking, providerID, models.RoleProvider); err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, utils.InvalidStatef("only pending bookings can be accepted, booking %s is %s", bookingID, booking.Status)
	}

	notif := s.buildNotification(models.SubtypeConfirmation, booking.UserID, booking.ID,
		"Booking confirmed",
		fmt.Sprintf("Your booking for %s %s has been confirmed by the provider.", booking.Date, booking.Time))

	updated, err := s.transition(ctx, bookingID,
		[]string{models.BookingStatusPending},
		map[string]interface{}{"status": models.BookingStatusConfirmed},
		notif)
	if err != nil {
		return nil, err
	}
	s.emitPush(ctx, notif)
	return updated, nil
}

func (s *DefaultBookingService) Reject(ctx context.Context, providerID, bookingID, reason, message string) (*models.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwnership(booking, providerID, models.RoleProvider); err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, utils.InvalidStatef("only pending bookings can be rejected, booking %s is %s", bookingID, booking.Status)
	}

	notif := s.buildNotification(models.SubtypeRejection, booking.UserID, booking.ID,
		"Booking rejected",
		fmt.Sprintf("Your booking for %s %s has been rejected by the provider.", booking.Date, booking.Time))

	updated, err := s.transition(ctx, bookingID,
		[]string{models.BookingStatusPending},
		map[string]interface{}{
			"status":         models.BookingStatusRejected,
			"reject_reason":  reason,
			"reject_message": message,
		},
		notif)
	if err != nil {
		return nil, err
	}
	s.emitPush(ctx, notif)
	return updated, nil
}

func (s *DefaultBookingService) Cancel(ctx context.Context, actorID, actorRole, bookingID string) (*models.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwnership(booking, actorID, actorRole); err != nil {
		return nil, err
	}
	if !models.IsActiveStatus(booking.Status) {
		return nil, utils.InvalidStatef("a %s booking cannot be canceled", booking.Status)
	}

	// Cancellation notifies the counterparty.
	recipient := booking.ProviderID
	if actorRole == models.RoleProvider {
		recipient = booking.UserID
	}
	notif := s.buildNotification(models.SubtypeCancellation, recipient, booking.ID,
		"Booking canceled",
		fmt.Sprintf("The booking scheduled for %s %s has been canceled.", booking.Date, booking.Time))

	updated, err := s.transition(ctx, bookingID,
		models.ActiveBookingStatuses,
		map[string]interface{}{"status": models.BookingStatusCanceled},
		notif)
	if err != nil {
		return nil, err
	}
	s.emitPush(ctx, notif)
	return updated, nil
}

func (s *DefaultBookingService) UpdateStatus(ctx context.Context, actorID, actorRole, bookingID, target string) (*models.Booking, error) {
	switch target {
	case models.BookingStatusConfirmed:
		if actorRole != models.RoleProvider {
			return nil, utils.Forbiddenf("only the provider can confirm a booking")
		}
		return s.Accept(ctx, actorID, bookingID)
	case models.BookingStatusRejected:
		if actorRole != models.RoleProvider {
			return nil, utils.Forbiddenf("only the provider can reject a booking")
		}
		return s.Reject(ctx, actorID, bookingID, "", "")
	case models.BookingStatusCanceled:
		return s.Cancel(ctx, actorID, actorRole, bookingID)
	case models.BookingStatusCompleted:
		return s.complete(ctx, actorID, actorRole, bookingID)
	}
	return nil, utils.Validationf("unsupported target status %q", target)
}

func (s *DefaultBookingService) complete(ctx context.Context, actorID, actorRole, bookingID string) (*models.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := ensureOwnership(booking, actorID, actorRole); err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, utils.InvalidStatef("only confirmed bookings can be completed, booking %s is %s", bookingID, booking.Status)
	}

	// Completion asks the customer for a review, but only a
	// provider-initiated completion notifies them.
	var notif *models.Notification
	if actorRole == models.RoleProvider {
		notif = s.buildNotification(models.SubtypeCompletion, booking.UserID, booking.ID,
			"Booking completed",
			fmt.Sprintf("Your booking for %s %s is complete. Please leave a review.", booking.Date, booking.Time))
	}

	updated, err := s.transition(ctx, bookingID,
		[]string{models.BookingStatusConfirmed},
		map[string]interface{}{
			"status":        models.BookingStatusCompleted,
			"review_needed": true,
		},
		notif)
	if err != nil {
		return nil, err
	}
	if notif != nil {
		s.emitPush(ctx, notif)
	}
	return updated, nil
}

func (s *DefaultBookingService) PromoteNoShow(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusConfirmed {
		return nil, utils.InvalidStatef("only confirmed bookings can be marked no-show, booking %s is %s", bookingID, booking.Status)
	}

	notif := s.buildNotification(models.SubtypeNoShow, booking.UserID, booking.ID,
		"Booking marked as no-show",
		fmt.Sprintf("Your booking for %s %s was marked as a no-show.", booking.Date, booking.Time))

	updated, err := s.transition(ctx, bookingID,
		[]string{models.BookingStatusConfirmed},
		map[string]interface{}{"status": models.BookingStatusNoShow},
		notif)
	if err != nil {
		return nil, err
	}
	s.emitPush(ctx, notif)
	return updated, nil
}

func (s *DefaultBookingService) PermanentDelete(ctx context.Context, actorID, actorRole, bookingID string) error {
	booking, err := s.load(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := ensureOwnership(booking, actorID, actorRole); err != nil {
		return err
	}
	if booking.Status != models.BookingStatusCompleted {
		return utils.InvalidStatef("only completed bookings can be permanently deleted, booking %s is %s", bookingID, booking.Status)
	}

	if err := s.Repo.DeleteWithReviewTx(ctx, bookingID); err != nil {
		if err == bookingRepo.ErrNotFound {
			return utils.NotFoundf("booking %s does not exist", bookingID)
		}
		return err
	}
	return nil
}

// transition runs the repository CAS and maps a lost status race onto
// the InvalidState kind, so a racing caller and a racing sweeper see
// exactly one winner.
func (s *DefaultBookingService) transition(ctx context.Context, bookingID string, from []string, set map[string]interface{}, notif *models.Notification) (*models.Booking, error) {
	updated, err := s.Repo.TransitionTx(ctx, bookingID, from, set, notif)
	if err != nil {
		switch err {
		case bookingRepo.ErrNotFound:
			return nil, utils.NotFoundf("booking %s does not exist", bookingID)
		case bookingRepo.ErrStatusChanged:
			return nil, utils.InvalidStatef("booking %s changed status concurrently", bookingID)
		}
		return nil, err
	}
	return updated, nil
}
