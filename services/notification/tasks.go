package notification

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"bookify/models"
)

// TypePushDeliver is the asynq task type for push delivery.
const TypePushDeliver = "notify:push"

// NewPushTask wraps a push payload into an asynq task.
func NewPushTask(payload models.PushPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePushDeliver, b), nil
}
