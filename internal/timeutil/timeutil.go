package timeutil

import "time"

// All appointment times are stored and compared in UTC. Interval overlap is
// only meaningful on a single time reference, so every timestamp entering
// the system passes through here first.

func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// ParseAppointmentTime accepts an RFC 3339 timestamp (with offset) and
// normalizes it to UTC.
func ParseAppointmentTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
