package booking

import (
	"context"
	"time"

	"github.com/tomasbaksys/Pet-Barbershop/internal/audit"
	"github.com/tomasbaksys/Pet-Barbershop/internal/catalog"
	domain "github.com/tomasbaksys/Pet-Barbershop/internal/domain/booking"
	"github.com/tomasbaksys/Pet-Barbershop/internal/models"
	"github.com/tomasbaksys/Pet-Barbershop/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID          uint
	ServiceID       uint
	AppointmentTime time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	catalog catalog.Reader
	audit   *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	reader catalog.Reader,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:    repo,
		catalog: reader,
		audit:   audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// Resolve service -> (salon, duration). A miss never touches the store.
	svc, err := uc.catalog.Lookup(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	start := timeutil.ToUTC(in.AppointmentTime)

	iv, err := domain.NewInterval(start, svc.DurationMin)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		UserID:    in.UserID,
		ServiceID: svc.ServiceID,
		SalonID:   svc.SalonID,
		StartTime: iv.Start,
		EndTime:   iv.End,
	}

	if err := uc.repo.TryBook(ctx, b); err != nil {
		if isConflict(err) {
			uc.audit.Dispatch(audit.Event{
				SalonID: &svc.SalonID,
				UserID:  &in.UserID,
				Action:  "booking_conflict",
				Entity:  "booking",
				Metadata: map[string]any{
					"start": iv.Start,
					"end":   iv.End,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  &svc.SalonID,
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
