// File: database/repository/timeslot/crud.go
package timeslotRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookify/models"
)

func (r *mongoTimeSlotRepo) Upsert(ctx context.Context, slot models.TimeSlot) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{
		"provider_id": slot.ProviderID,
		"date":        slot.Date,
		"time":        slot.Time,
	}
	update := bson.M{
		"$set": bson.M{
			"is_available": slot.IsAvailable,
			"updated_at":   now,
		},
		"$setOnInsert": bson.M{
			"id":          uuid.New().String(),
			"provider_id": slot.ProviderID,
			"date":        slot.Date,
			"time":        slot.Time,
			"created_at":  now,
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *mongoTimeSlotRepo) GetByKey(ctx context.Context, providerID, date, clock string) (*models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID, "date": date, "time": clock}
	var slot models.TimeSlot
	if err := r.coll.FindOne(ctx, filter).Decode(&slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *mongoTimeSlotRepo) DeleteByKey(ctx context.Context, providerID, date, clock string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"provider_id": providerID, "date": date, "time": clock}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
