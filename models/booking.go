package models

import (
	"fmt"
	"time"
)

// Booking statuses. A booking starts out pending and moves through the
// status graph via BookingService operations only.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusRejected  = "rejected"
	BookingStatusCanceled  = "canceled"
	BookingStatusNoShow    = "no-show"
)

// Booking represents a customer's reservation of a provider time slot.
type Booking struct {
	ID            string    `bson:"id" json:"id"`                                                   // Unique booking identifier (UUID)
	UserID        string    `bson:"user_id" json:"user_id"`                                         // User who made the booking
	ProviderID    string    `bson:"provider_id" json:"provider_id"`                                 // Provider who was booked
	ServiceID     string    `bson:"service_id" json:"service_id"`                                   // Service being booked
	Date          string    `bson:"date" json:"date"`                                               // Booking date in "YYYY-MM-DD" format
	Time          string    `bson:"time" json:"time"`                                               // Time of day in "HH:MM" format
	Status        string    `bson:"status" json:"status"`                                           // One of the BookingStatus* constants
	ReviewNeeded  bool      `bson:"review_needed" json:"review_needed"`                             // Set on completion, cleared once a review lands
	RejectReason  string    `bson:"reject_reason,omitempty" json:"reject_reason,omitempty"`         // Provider-supplied rejection reason code
	RejectMessage string    `bson:"reject_message,omitempty" json:"reject_message,omitempty"`       // Free-form rejection message
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// ActiveBookingStatuses are the statuses under which a booking still
// occupies its (provider, date, time) slot.
var ActiveBookingStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

// IsActiveStatus reports whether a booking in the given status still
// holds its slot.
func IsActiveStatus(status string) bool {
	return status == BookingStatusPending || status == BookingStatusConfirmed
}

// IsTerminalStatus reports whether the given status admits no further
// transitions.
func IsTerminalStatus(status string) bool {
	switch status {
	case BookingStatusCompleted, BookingStatusRejected, BookingStatusCanceled, BookingStatusNoShow:
		return true
	}
	return false
}

// ScheduledAt combines the booking's date and time-of-day into a single
// timestamp in the local (provider) timezone.
func (b *Booking) ScheduledAt() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", fmt.Sprintf("%s %s", b.Date, b.Time), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("booking %s has malformed schedule %q %q: %w", b.ID, b.Date, b.Time, err)
	}
	return t, nil
}

// BookingStats summarises booking counts per bucket for a dashboard view.
type BookingStats struct {
	Pending   int64 `json:"pending"`
	Upcoming  int64 `json:"upcoming"`
	Completed int64 `json:"completed"`
	Canceled  int64 `json:"canceled"`
}
