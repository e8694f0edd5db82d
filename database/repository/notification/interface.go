// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"
	"errors"

	"bookify/database"
	"bookify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no notification matches the requested id.
var ErrNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Insert(ctx context.Context, notif *models.Notification) error
	// ExistsByRelatedAndSubtype reports whether a notification with the
	// given (recipient, related_id, subtype) triple was already recorded.
	// This is the authoritative reminder dedup check.
	ExistsByRelatedAndSubtype(ctx context.Context, userID, relatedID, subtype string) (bool, error)
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notifID string) error
	EnsureIndexes() error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}
