package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// SalonID is denormalized from the service so the overlap scan and the
	// exclusion constraint work on a single table.
	SalonID uint `gorm:"index:idx_bookings_salon_window" json:"salon_id"`

	// Stored in UTC. The occupied interval is [StartTime, EndTime).
	StartTime time.Time `gorm:"index:idx_bookings_salon_window" json:"appointment_time"`
	EndTime   time.Time `json:"end_time"`

	IsCancelled bool `gorm:"not null;default:false" json:"is_cancelled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
