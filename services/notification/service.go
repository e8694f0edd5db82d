package notification

import (
	"context"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"bookify/models"
)

// AsynqSink queues push payloads on the redis-backed task queue; the
// push worker drains them out of band.
type AsynqSink struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func NewAsynqSink(client *asynq.Client, logger *zap.Logger) *AsynqSink {
	return &AsynqSink{Client: client, Logger: logger}
}

func (s *AsynqSink) Emit(ctx context.Context, payload models.PushPayload) {
	task, err := NewPushTask(payload)
	if err != nil {
		s.Logger.Error("notification: failed to build push task", zap.Error(err))
		return
	}
	if _, err := s.Client.EnqueueContext(ctx, task); err != nil {
		// Fire-and-forget: a lost push never fails the transition that
		// produced it.
		s.Logger.Warn("notification: failed to enqueue push task",
			zap.String("recipient", payload.RecipientID), zap.Error(err))
	}
}

// NopSink drops every payload. Useful when no queue is configured.
type NopSink struct{}

func (NopSink) Emit(context.Context, models.PushPayload) {}
