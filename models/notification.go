package models

import "time"

// Notification types and subtypes. Booking notifications carry one of
// the subtype constants; the (related_id, subtype) pair doubles as the
// idempotency key for reminder deduplication.
const (
	NotificationTypeBooking = "booking"

	SubtypeConfirmation = "confirmation"
	SubtypeRejection    = "rejection"
	SubtypeCancellation = "cancellation"
	SubtypeCompletion   = "completion"
	SubtypeReminder     = "reminder"
	SubtypeNoShow       = "no-show"
)

// Notification is a persisted in-app notification record.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"` // Recipient (user or provider principal)
	Type      string    `bson:"type" json:"type"`
	Subtype   string    `bson:"subtype,omitempty" json:"subtype,omitempty"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content,omitempty" json:"content,omitempty"`
	RelatedID string    `bson:"related_id,omitempty" json:"related_id,omitempty"` // e.g. the booking id
	IsRead    bool      `bson:"is_read" json:"is_read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// PushPayload is the wire payload handed to the async push dispatcher.
type PushPayload struct {
	RecipientID string            `json:"recipientId"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
}
