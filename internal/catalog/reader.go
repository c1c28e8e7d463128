package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/tomasbaksys/Pet-Barbershop/internal/httperr"
	"github.com/tomasbaksys/Pet-Barbershop/internal/models"
)

// ServiceInfo is what the booking core needs to know about a service: which
// salon's calendar it occupies and for how long.
type ServiceInfo struct {
	ServiceID   uint   `json:"service_id"`
	SalonID     uint   `json:"salon_id"`
	Name        string `json:"name"`
	DurationMin int    `json:"duration_min"`
}

type Reader interface {
	Lookup(ctx context.Context, serviceID uint) (*ServiceInfo, error)
}

type GormReader struct {
	db *gorm.DB
}

func NewGormReader(db *gorm.DB) *GormReader {
	return &GormReader{db: db}
}

func (r *GormReader) Lookup(
	ctx context.Context,
	serviceID uint,
) (*ServiceInfo, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	return &ServiceInfo{
		ServiceID:   svc.ID,
		SalonID:     svc.SalonID,
		Name:        svc.Name,
		DurationMin: svc.DurationMin,
	}, nil
}

var _ Reader = (*GormReader)(nil)
