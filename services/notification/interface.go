package notification

import (
	"context"

	"bookify/models"
)

// Sink dispatches push payloads for already-persisted notification
// records. Emission is fire-and-forget: delivery failures are the
// sink's concern, never the caller's.
type Sink interface {
	Emit(ctx context.Context, payload models.PushPayload)
}
