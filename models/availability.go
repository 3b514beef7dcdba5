package models

import "time"

// RecurrenceKind distinguishes one-off dated rules from weekly repeating ones.
type RecurrenceKind string

const (
	RecurrenceOneOff RecurrenceKind = "oneOff"
	RecurrenceWeekly RecurrenceKind = "weekly"
)

// AvailabilityRule is one availability declaration by a coach: a time window on
// either a single date or a repeating weekday, the subset of catalogue services
// offered in it, and the buffer minutes around each appointment.
type AvailabilityRule struct {
	ID           string         `bson:"id" json:"id"`
	CoachID      string         `bson:"coach_id" json:"coach_id"`
	LocationID   string         `bson:"location_id" json:"location_id"`
	ServiceNames []string       `bson:"service_names" json:"service_names"`
	StartTime    string         `bson:"start_time" json:"start_time"`       // "HH:MM", window start
	EndTime      string         `bson:"end_time" json:"end_time"`           // "HH:MM", strictly after start
	BufferBefore int            `bson:"buffer_before" json:"buffer_before"` // Minutes, >= 0
	BufferAfter  int            `bson:"buffer_after" json:"buffer_after"`   // Minutes, >= 0
	Recurrence   RecurrenceKind `bson:"recurrence" json:"recurrence"`

	// One-off rules: the exact calendar date.
	Date string `bson:"date,omitempty" json:"date,omitempty"` // "YYYY-MM-DD"

	// Weekly rules: weekday 0..6 (0 = Sunday) bounded by [StartDate, EndDate].
	// An empty EndDate means the rule repeats indefinitely.
	DayOfWeek int    `bson:"day_of_week" json:"day_of_week"`
	StartDate string `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate   string `bson:"end_date,omitempty" json:"end_date,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
