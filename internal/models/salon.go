package models

import "time"

type Salon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`

	OwnerID uint `gorm:"index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
