package booking

import (
	"context"

	"github.com/google/uuid"

	"bookify/models"
)

func (s *DefaultBookingService) buildNotification(subtype, recipientID, bookingID, title, content string) *models.Notification {
	now := s.Clock.Now()
	return &models.Notification{
		ID:        uuid.New().String(),
		UserID:    recipientID,
		Type:      models.NotificationTypeBooking,
		Subtype:   subtype,
		Title:     title,
		Content:   content,
		RelatedID: bookingID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *DefaultBookingService) emitPush(ctx context.Context, notif *models.Notification) {
	s.Sink.Emit(ctx, models.PushPayload{
		RecipientID: notif.UserID,
		Title:       notif.Title,
		Body:        notif.Content,
		Data: map[string]string{
			"type":      notif.Type,
			"subtype":   notif.Subtype,
			"relatedId": notif.RelatedID,
		},
	})
}
