// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/models"
)

func (r *mongoBookingRepo) GetByCoachAndDate(ctx context.Context, coachID, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"coach_id": coachID, "date": date})
}

// GetConfirmedByCoachAndDate is the conflict scan's data source: only
// confirmed bookings, cancelled ones never appear.
func (r *mongoBookingRepo) GetConfirmedByCoachAndDate(ctx context.Context, coachID, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{
		"coach_id": coachID,
		"date":     date,
		"status":   models.BookingStatusConfirmed,
	})
}

func (r *mongoBookingRepo) GetByPlayer(ctx context.Context, playerID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"player_id": playerID})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
