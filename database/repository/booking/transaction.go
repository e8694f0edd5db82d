// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookify/models"
)

func (r *mongoBookingRepo) TransitionTx(
	ctx context.Context,
	bookingID string,
	fromStatuses []string,
	set map[string]interface{},
	notif *models.Notification,
) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	set["updated_at"] = time.Now()

	var updated models.Booking
	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"id":     bookingID,
			"status": bson.M{"$in": fromStatuses},
		}
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err := r.coll.FindOneAndUpdate(sc, filter, bson.M{"$set": set}, opts).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			// Distinguish a missing booking from a lost status race.
			count, cerr := r.coll.CountDocuments(sc, bson.M{"id": bookingID})
			if cerr != nil {
				return cerr
			}
			if count == 0 {
				return ErrNotFound
			}
			return ErrStatusChanged
		}
		if err != nil {
			return err
		}

		if notif != nil {
			if _, err := r.notifColl.InsertOne(sc, notif); err != nil {
				return fmt.Errorf("insert notification failed: %w", err)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *mongoBookingRepo) DeleteWithReviewTx(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.reviewColl.DeleteMany(sc, bson.M{"booking_id": bookingID}); err != nil {
			return fmt.Errorf("delete reviews failed: %w", err)
		}
		res, err := r.coll.DeleteOne(sc, bson.M{"id": bookingID})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return ErrNotFound
		}
		return nil
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
