package models

// CandidateSlot is a bookable time slot derived from an availability rule for a
// specific date. It is never persisted; the engine produces it transiently for
// calendar display and for validating a reservation request.
type CandidateSlot struct {
	Date        string `json:"date"` // "YYYY-MM-DD"
	ServiceName string `json:"service_name"`
	LocationID  string `json:"location_id"`
	Start       int    `json:"start"` // Minutes from midnight
	End         int    `json:"end"`   // Minutes from midnight
	Label       string `json:"label"` // e.g. "09:00 - 09:30"
	IsBooked    bool   `json:"is_booked"`

	// Buffers inherited from the originating rule, used by the conflict scan.
	BufferBefore int `json:"-"`
	BufferAfter  int `json:"-"`
}

// DayAvailability is one month-view calendar cell: whether the coach has at
// least one open slot on the date.
type DayAvailability struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}
