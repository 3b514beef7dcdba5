package models

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed booking record. Cancellation is a terminal
// soft delete: cancelled bookings are kept for history but never block new
// reservations.
type Booking struct {
	ID              string        `bson:"id" json:"id"`               // Unique booking identifier (UUID)
	CoachID         string        `bson:"coach_id" json:"coach_id"`   // Coach who was booked
	PlayerID        string        `bson:"player_id" json:"player_id"` // Player the booking is for
	ServiceName     string        `bson:"service_name" json:"service_name"`
	Date            string        `bson:"date" json:"date"`   // Booking date in "YYYY-MM-DD" format
	Start           int           `bson:"start" json:"start"` // Start time (minutes from midnight)
	End             int           `bson:"end" json:"end"`     // End time (minutes from midnight)
	DurationMinutes int           `bson:"duration_minutes" json:"duration_minutes"`
	Status          BookingStatus `bson:"status" json:"status"`
	LocationID      string        `bson:"location_id" json:"location_id"`
	Notes           string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	CancelledAt     *time.Time    `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
}
