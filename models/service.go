package models

import "time"

// Service is a catalog entry owned by a provider. The catalog itself is
// managed elsewhere; the booking engine only resolves and validates it.
type Service struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	Title      string    `bson:"title" json:"title"`
	Price      float64   `bson:"price" json:"price"`
	PriceUnit  string    `bson:"price_unit,omitempty" json:"price_unit,omitempty"`
	Duration   int       `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
