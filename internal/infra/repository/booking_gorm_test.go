package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/tomasbaksys/Pet-Barbershop/internal/db"
	"github.com/tomasbaksys/Pet-Barbershop/internal/httperr"
	"github.com/tomasbaksys/Pet-Barbershop/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: is per-connection; keep the pool at one so every query sees
	// the same database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func seedSalonService(t *testing.T, db *gorm.DB) (models.Salon, models.Service, models.User) {
	t.Helper()

	owner := models.User{Username: "owner", PasswordHash: "x", IsSalonOwner: true}
	require.NoError(t, db.Create(&owner).Error)

	salon := models.Salon{Name: "Fluffy Paws", OwnerID: owner.ID}
	require.NoError(t, db.Create(&salon).Error)

	svc := models.Service{SalonID: salon.ID, Name: "Haircut", PriceCents: 3500, DurationMin: 30}
	require.NoError(t, db.Create(&svc).Error)

	customer := models.User{Username: "customer", PasswordHash: "x"}
	require.NoError(t, db.Create(&customer).Error)

	return salon, svc, customer
}

func bookingAt(salon models.Salon, svc models.Service, user models.User, start time.Time) *models.Booking {
	return &models.Booking{
		UserID:    user.ID,
		ServiceID: svc.ID,
		SalonID:   salon.ID,
		StartTime: start,
		EndTime:   start.Add(time.Duration(svc.DurationMin) * time.Minute),
	}
}

func TestTryBook_AdmitsAndRejects(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db, 5*time.Second)
	salon, svc, customer := seedSalonService(t, db)
	ctx := context.Background()

	at := func(h, m int) time.Time {
		return time.Date(2025, 7, 1, h, m, 0, 0, time.UTC)
	}

	// 14:00-14:30 admitted.
	first := bookingAt(salon, svc, customer, at(14, 0))
	require.NoError(t, repo.TryBook(ctx, first))
	assert.NotZero(t, first.ID)

	// 14:15-14:45 overlaps 14:00-14:30.
	overlapping := bookingAt(salon, svc, customer, at(14, 15))
	err := repo.TryBook(ctx, overlapping)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "rejected booking must not be persisted")

	// 14:30-15:00 starts exactly where the first ends; half-open, no overlap.
	adjacent := bookingAt(salon, svc, customer, at(14, 30))
	require.NoError(t, repo.TryBook(ctx, adjacent))
}

func TestTryBook_OtherSalonUnaffected(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db, 5*time.Second)
	salon, svc, customer := seedSalonService(t, db)
	ctx := context.Background()

	other := models.Salon{Name: "Shaggy Dog", OwnerID: salon.OwnerID}
	require.NoError(t, db.Create(&other).Error)
	otherSvc := models.Service{SalonID: other.ID, Name: "Wash", PriceCents: 2000, DurationMin: 30}
	require.NoError(t, db.Create(&otherSvc).Error)

	start := time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)

	require.NoError(t, repo.TryBook(ctx, bookingAt(salon, svc, customer, start)))
	require.NoError(t, repo.TryBook(ctx, bookingAt(other, otherSvc, customer, start)))
}

func TestTryBook_CancelledBookingFreesSlot(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db, 5*time.Second)
	salon, svc, customer := seedSalonService(t, db)
	ctx := context.Background()

	start := time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)

	first := bookingAt(salon, svc, customer, start)
	require.NoError(t, repo.TryBook(ctx, first))

	first.IsCancelled = true
	require.NoError(t, repo.UpdateBooking(ctx, first))

	// The cancelled row no longer constrains the interval.
	again := bookingAt(salon, svc, customer, start)
	require.NoError(t, repo.TryBook(ctx, again))
	assert.NotEqual(t, first.ID, again.ID)
}

func TestTryBook_CancelledContextIsUnavailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db, 5*time.Second)
	salon, svc, customer := seedSalonService(t, db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)
	err := repo.TryBook(ctx, bookingAt(salon, svc, customer, start))
	assert.True(t, httperr.IsBusiness(err, "store_unavailable"))

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestQueries_AreDeadlineBounded(t *testing.T) {
	db := newTestDB(t)
	// An already-expired deadline: every operation must fail instead of
	// running on the caller's unbounded context.
	repo := NewBookingGormRepository(db, time.Nanosecond)
	_, _, customer := seedSalonService(t, db)
	ctx := context.Background()

	_, err := repo.GetBookingForUser(ctx, 1, customer.ID)
	assert.Error(t, err)
	assert.False(t, httperr.IsBusiness(err, "booking_not_found"))

	_, err = repo.ListBookingsForUser(ctx, customer.ID)
	assert.Error(t, err)

	err = repo.UpdateBooking(ctx, &models.Booking{ID: 1, UserID: customer.ID})
	assert.Error(t, err)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, isTransient(context.DeadlineExceeded))
	assert.True(t, isTransient(context.Canceled))
	assert.True(t, isTransient(driver.ErrBadConn))
	assert.True(t, isTransient(&net.OpError{Op: "dial", Err: errors.New("refused")}))
	assert.True(t, isTransient(fmt.Errorf("begin: %w", context.Canceled)))

	assert.False(t, isTransient(nil))
	assert.False(t, isTransient(gorm.ErrRecordNotFound))
	assert.False(t, isTransient(errors.New("syntax error")))
}

func TestGetBookingForUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db, 5*time.Second)
	salon, svc, customer := seedSalonService(t, db)
	ctx := context.Background()

	start := time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC)
	b := bookingAt(salon, svc, customer, start)
	require.NoError(t, repo.TryBook(ctx, b))

	got, err := repo.GetBookingForUser(ctx, b.ID, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = repo.GetBookingForUser(ctx, 9999, customer.ID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))

	// Someone else's booking id behaves like an unknown id.
	stranger := models.User{Username: "stranger", PasswordHash: "x"}
	require.NoError(t, db.Create(&stranger).Error)
	_, err = repo.GetBookingForUser(ctx, b.ID, stranger.ID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestListBookingsForUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db, 5*time.Second)
	salon, svc, customer := seedSalonService(t, db)
	ctx := context.Background()

	at := func(h int) time.Time {
		return time.Date(2025, 7, 1, h, 0, 0, 0, time.UTC)
	}

	later := bookingAt(salon, svc, customer, at(16))
	require.NoError(t, repo.TryBook(ctx, later))
	earlier := bookingAt(salon, svc, customer, at(10))
	require.NoError(t, repo.TryBook(ctx, earlier))

	earlier.IsCancelled = true
	require.NoError(t, repo.UpdateBooking(ctx, earlier))

	bookings, err := repo.ListBookingsForUser(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	// Ordered by appointment time, cancelled rows included, names joined.
	assert.Equal(t, earlier.ID, bookings[0].ID)
	assert.True(t, bookings[0].IsCancelled)
	assert.Equal(t, "Haircut", bookings[0].Service.Name)
	assert.Equal(t, "Fluffy Paws", bookings[0].Service.Salon.Name)
	assert.Equal(t, later.ID, bookings[1].ID)
	assert.False(t, bookings[1].IsCancelled)
}

func TestListBookingsForUser_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db, 5*time.Second)
	_, _, customer := seedSalonService(t, db)

	bookings, err := repo.ListBookingsForUser(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

