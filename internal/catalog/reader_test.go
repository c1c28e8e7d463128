package catalog

import (
	"context"
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
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func TestGormReader_Lookup(t *testing.T) {
	db := newTestDB(t)

	owner := models.User{Username: "owner", PasswordHash: "x", IsSalonOwner: true}
	require.NoError(t, db.Create(&owner).Error)
	salon := models.Salon{Name: "Fluffy Paws", OwnerID: owner.ID}
	require.NoError(t, db.Create(&salon).Error)
	svc := models.Service{SalonID: salon.ID, Name: "Haircut", PriceCents: 3500, DurationMin: 30}
	require.NoError(t, db.Create(&svc).Error)

	reader := NewGormReader(db)

	info, err := reader.Lookup(context.Background(), svc.ID)
	require.NoError(t, err)
	assert.Equal(t, salon.ID, info.SalonID)
	assert.Equal(t, 30, info.DurationMin)
	assert.Equal(t, "Haircut", info.Name)
}

func TestGormReader_LookupUnknownService(t *testing.T) {
	db := newTestDB(t)
	reader := NewGormReader(db)

	_, err := reader.Lookup(context.Background(), 9999)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestNewReader_NilClientSkipsCache(t *testing.T) {
	db := newTestDB(t)
	plain := NewGormReader(db)

	reader := NewReader(plain, nil, time.Minute)
	assert.Same(t, Reader(plain), reader)
}
