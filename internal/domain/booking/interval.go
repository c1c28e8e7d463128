package booking

import (
	"time"

	"github.com/tomasbaksys/Pet-Barbershop/internal/httperr"
)

// Interval is a half-open time range [Start, End) occupied by a booking.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval computes the occupied interval for an appointment. Durations
// come from the service catalog but are re-checked here: a zero or negative
// duration would make every admission trivially conflict-free.
func NewInterval(start time.Time, durationMin int) (Interval, error) {
	if durationMin <= 0 {
		return Interval{}, httperr.ErrBusiness("invalid_duration")
	}
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMin) * time.Minute),
	}, nil
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// intervals (one ends exactly where the other starts) do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}
