package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tomasbaksys/Pet-Barbershop/internal/audit"
	"github.com/tomasbaksys/Pet-Barbershop/internal/httperr"
	"github.com/tomasbaksys/Pet-Barbershop/internal/httpresp"
	"github.com/tomasbaksys/Pet-Barbershop/internal/middleware"
	"github.com/tomasbaksys/Pet-Barbershop/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

type CreateServiceRequest struct {
	SalonID     uint   `json:"salon_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PriceCents  int    `json:"price_cents" binding:"min=0"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, req.SalonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	if salon.OwnerID != userID {
		httperr.Forbidden(c, "not_salon_owner", "You do not own this salon.")
		return
	}

	svc := models.Service{
		SalonID:     req.SalonID,
		Name:        req.Name,
		PriceCents:  req.PriceCents,
		DurationMin: req.DurationMin,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  &salon.ID,
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
	})

	c.JSON(http.StatusCreated, svc)
}

// ListBySalon is public: a booking page needs the catalog before the
// customer authenticates.
func (h *ServiceHandler) ListBySalon(c *gin.Context) {
	var salon models.Salon
	if err := h.db.First(&salon, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	httpresp.List(c, services)
}
