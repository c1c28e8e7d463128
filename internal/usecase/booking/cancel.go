package booking

import (
	"context"

	"github.com/tomasbaksys/Pet-Barbershop/internal/audit"
	domain "github.com/tomasbaksys/Pet-Barbershop/internal/domain/booking"
	"github.com/tomasbaksys/Pet-Barbershop/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute soft-cancels a booking owned by the user. Cancelling an already
// cancelled booking returns it unchanged, so retries are safe.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	if !domain.Cancel(b) {
		return b, nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &b.SalonID,
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
