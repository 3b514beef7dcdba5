package models

// Service represents one bookable offering in a coach's catalogue.
type Service struct {
	// Name is unique within a coach's catalogue.
	Name            string `bson:"name" json:"name"`
	DurationMinutes int    `bson:"duration_minutes" json:"duration_minutes"` // Must be > 0
	Color           string `bson:"color,omitempty" json:"color,omitempty"`   // Display-only
}
