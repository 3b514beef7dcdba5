// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/models"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for the conflict scan query pattern
		{
			Keys:    bson.D{{Key: "coach_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("coach_date_status_idx"),
		},
		// Partial unique index over confirmed bookings only: the cross-process
		// backstop against two requesters inserting the same slot. Cancelled
		// bookings fall outside the partial filter and never block reuse.
		{
			Keys: bson.D{
				{Key: "coach_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "start", Value: 1},
				{Key: "service_name", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("confirmed_slot_unique_idx").
				SetPartialFilterExpression(bson.M{"status": models.BookingStatusConfirmed}),
		},
		{
			Keys:    bson.D{{Key: "player_id", Value: 1}},
			Options: options.Index().SetName("player_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
