package models

import "time"

// TimeSlot is a provider's availability record for one (date, time) key.
// Deleting or disabling a slot is never retroactive: a booking that
// already holds the key keeps it.
type TimeSlot struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"provider_id" json:"provider_id"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string    `bson:"time" json:"time"` // "HH:MM"
	IsAvailable bool      `bson:"is_available" json:"is_available"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// SlotEntry is one element of a bulk availability update.
type SlotEntry struct {
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Available bool   `json:"is_available"`
}

// BulkUpsertResult reports how many rows a bulk update created vs
// overwrote.
type BulkUpsertResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// DayAvailability is the customer-facing availability derivation for a
// single provider date.
type DayAvailability struct {
	Date           string   `json:"date"`
	AvailableTimes []string `json:"available_times"`
}
