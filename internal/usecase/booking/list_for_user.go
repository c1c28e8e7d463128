package booking

import (
	"context"

	domain "github.com/tomasbaksys/Pet-Barbershop/internal/domain/booking"
	"github.com/tomasbaksys/Pet-Barbershop/internal/dto"
)

type ListBookingsForUser struct {
	repo domain.Repository
}

func NewListBookingsForUser(
	repo domain.Repository,
) *ListBookingsForUser {
	return &ListBookingsForUser{
		repo: repo,
	}
}

// Execute returns every booking of the user, cancelled ones included, with
// denormalized service and salon names, ordered by appointment time.
func (uc *ListBookingsForUser) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingViewDTO, error) {

	bookings, err := uc.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingViewDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingViewDTO{
			ID:              b.ID,
			AppointmentTime: b.StartTime,
			EndTime:         b.EndTime,
			ServiceName:     b.Service.Name,
			SalonName:       b.Service.Salon.Name,
			IsCancelled:     b.IsCancelled,
		})
	}

	return out, nil
}
