package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/tomasbaksys/Pet-Barbershop/internal/domain/booking"
	"github.com/tomasbaksys/Pet-Barbershop/internal/httperr"
	"github.com/tomasbaksys/Pet-Barbershop/internal/models"
)

type BookingGormRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewBookingGormRepository(db *gorm.DB, timeout time.Duration) *BookingGormRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &BookingGormRepository{db: db, timeout: timeout}
}

func (r *BookingGormRepository) isPostgres() bool {
	return r.db.Dialector.Name() == "postgres"
}

// opCtx bounds every store operation by the configured timeout.
func (r *BookingGormRepository) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// isTransient classifies failures the caller may retry: deadlines, cancelled
// requests, dead connections, and network errors. Constraint violations and
// plain query errors are not transient.
func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// --------------------------------------------------
// Booking (admission)
// --------------------------------------------------

// TryBook is the single write path for new bookings. The overlap check and
// the insert run in one transaction, serialized per salon with an advisory
// transaction lock, so two racing requests for the same salon are admitted
// one at a time; the second one sees the first one's row and loses. The
// bookings exclusion constraint (see internal/db) catches anything that
// still slips through and is mapped to the same time_conflict.
func (r *BookingGormRepository) TryBook(
	ctx context.Context,
	b *models.Booking,
) error {

	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if r.isPostgres() {
			if err := tx.Exec(
				"SELECT pg_advisory_xact_lock(?)",
				int64(b.SalonID),
			).Error; err != nil {
				return err
			}
		}

		q := tx.Model(&models.Booking{})
		if r.isPostgres() {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var conflicts []models.Booking
		if err := q.
			Select("id").
			Where(
				"salon_id = ? AND is_cancelled = ? AND start_time < ? AND end_time > ?",
				b.SalonID, false, b.EndTime, b.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(b).Error
	})

	switch {
	case err == nil:
		return nil
	case httperr.IsExclusionConflict(err):
		return httperr.ErrBusiness("time_conflict")
	case isTransient(err):
		return httperr.ErrBusiness("store_unavailable")
	default:
		return err
	}
}

// --------------------------------------------------
// Booking (queries / state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Service.Salon").
		Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
