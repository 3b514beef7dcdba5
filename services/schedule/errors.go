package schedule

import "errors"

var (
	// ErrSlotNoLongerAvailable means the reservation recheck found a conflicting
	// confirmed booking. Surfaced to the requester as "please choose another
	// time"; never retried automatically.
	ErrSlotNoLongerAvailable = errors.New("slot is no longer available")

	// ErrInvalidRule means a rule failed validation (end_time <= start_time,
	// negative buffers, or a service name absent from the coach's catalogue).
	ErrInvalidRule = errors.New("invalid availability rule")

	// ErrOutsideAvailability means a reservation targeted an interval no
	// availability rule produces for that coach and date.
	ErrOutsideAvailability = errors.New("requested time is outside the coach's availability")

	// ErrCoachNotFound means the referenced coach does not exist.
	ErrCoachNotFound = errors.New("coach not found")

	// ErrBookingNotFound means the referenced booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
)
