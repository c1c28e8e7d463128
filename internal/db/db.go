package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tomasbaksys/Pet-Barbershop/internal/config"
	"github.com/tomasbaksys/Pet-Barbershop/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

// The columns are timestamptz (gorm's postgres mapping for time.Time), so
// the range type must be tstzrange; tsrange would fail function resolution
// and abort the migration.
const bookingsWindowConstraint = `
    DO $$ BEGIN
        ALTER TABLE bookings
            ADD CONSTRAINT bookings_salon_window_excl
            EXCLUDE USING gist (
                salon_id WITH =,
                tstzrange(start_time, end_time) WITH &&
            ) WHERE (NOT is_cancelled);
    EXCEPTION
        WHEN duplicate_object THEN NULL;
        WHEN duplicate_table THEN NULL;
    END $$
`

// Migrate creates the schema plus the exclusion constraint that backstops
// the admission transaction: even if a future code path skips the advisory
// lock, Postgres itself refuses two non-cancelled bookings with overlapping
// [start_time, end_time) ranges on one salon.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Salon{},
		&models.Service{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			return err
		}

		if err := db.Exec(bookingsWindowConstraint).Error; err != nil {
			return err
		}
	}

	return nil
}
