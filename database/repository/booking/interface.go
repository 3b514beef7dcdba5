// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"courtside/config"
	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateBooking is returned when the unique index on confirmed bookings
// rejects an insert: another confirmed booking already holds the same coach,
// date, start and service. Callers treat it as a lost reservation race.
var ErrDuplicateBooking = errors.New("a confirmed booking already exists for this slot")

type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetByCoachAndDate(ctx context.Context, coachID, date string) ([]models.Booking, error)
	GetConfirmedByCoachAndDate(ctx context.Context, coachID, date string) ([]models.Booking, error)
	GetByPlayer(ctx context.Context, playerID string) ([]models.Booking, error)
	Cancel(ctx context.Context, bookingID string, at time.Time) (*models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
