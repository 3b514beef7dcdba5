package models

// ReserveRequest is the payload for reserving a slot.
type ReserveRequest struct {
	CoachID     string `json:"coach_id" binding:"required"`
	PlayerID    string `json:"player_id" binding:"required"`
	ServiceName string `json:"service_name" binding:"required"`
	Date        string `json:"date" binding:"required"`       // "YYYY-MM-DD"
	StartTime   string `json:"start_time" binding:"required"` // "HH:MM"
	EndTime     string `json:"end_time" binding:"required"`   // "HH:MM"
	LocationID  string `json:"location_id"`
	Notes       string `json:"notes"`
}

// RuleRequest is the payload for creating an availability rule.
type RuleRequest struct {
	LocationID   string         `json:"location_id"`
	ServiceNames []string       `json:"service_names" binding:"required"`
	StartTime    string         `json:"start_time" binding:"required"`
	EndTime      string         `json:"end_time" binding:"required"`
	BufferBefore int            `json:"buffer_before"`
	BufferAfter  int            `json:"buffer_after"`
	Recurrence   RecurrenceKind `json:"recurrence" binding:"required"`
	Date         string         `json:"date"`
	DayOfWeek    int            `json:"day_of_week"`
	StartDate    string         `json:"start_date"`
	EndDate      string         `json:"end_date"`
}

// ServiceRequest is the payload for adding a catalogue service.
type ServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Color           string `json:"color"`
}
