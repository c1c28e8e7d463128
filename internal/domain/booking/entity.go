package booking

import "github.com/tomasbaksys/Pet-Barbershop/internal/models"

// ===============================
// Domain Actions
// ===============================

// Cancel soft-deletes a booking. The row is kept for history; only the flag
// changes, which removes the interval from the overlap constraint. Returns
// false when the booking was already cancelled, so callers can skip the
// write and keep the operation idempotent.
func Cancel(b *models.Booking) bool {
	if b.IsCancelled {
		return false
	}
	b.IsCancelled = true
	return true
}

// Interval returns the booking's occupied time range.
func IntervalOf(b *models.Booking) Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}
