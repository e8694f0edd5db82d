package models

import "time"

// Review is recorded externally; the booking engine only needs the
// linkage so a permanent booking delete can take the review with it.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	ServiceID  string    `bson:"service_id" json:"service_id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"`
	Rating     int       `bson:"rating" json:"rating"`
	Content    string    `bson:"content,omitempty" json:"content,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
