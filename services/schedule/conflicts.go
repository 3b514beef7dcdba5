package schedule

import "courtside/models"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// AnnotateConflicts marks each candidate as booked when its buffered interval
// [start - buffer_before, end + buffer_after) overlaps any confirmed booking
// for the coach on the date. Buffers come from the candidate's own rule, not
// the booking's. Cancelled bookings are excluded from the scan entirely.
func AnnotateConflicts(candidates []models.CandidateSlot, bookings []models.Booking, coachID, date string) []models.CandidateSlot {
	confirmed := bookings[:0:0]
	for _, b := range bookings {
		if b.Status == models.BookingStatusConfirmed && b.CoachID == coachID && b.Date == date {
			confirmed = append(confirmed, b)
		}
	}

	for i := range candidates {
		c := &candidates[i]
		c.IsBooked = overlapsAnyBooking(c.Start-c.BufferBefore, c.End+c.BufferAfter, confirmed)
	}
	return candidates
}

func overlapsAnyBooking(start, end int, bookings []models.Booking) bool {
	for _, b := range bookings {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
