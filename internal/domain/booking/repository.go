package booking

import (
	"context"

	"github.com/tomasbaksys/Pet-Barbershop/internal/models"
)

type Repository interface {
	// -------- Booking (admission) --------

	// TryBook atomically checks the requested interval against every
	// non-cancelled booking of the same salon and persists the booking only
	// when no overlap exists. Two concurrent calls for overlapping windows
	// of one salon must never both succeed: implementations serialize the
	// check-then-insert per salon (or detect the loser via a storage
	// constraint) and answer the loser with time_conflict.
	TryBook(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (queries / state change) --------
	GetBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
