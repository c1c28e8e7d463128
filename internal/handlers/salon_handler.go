package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tomasbaksys/Pet-Barbershop/internal/audit"
	"github.com/tomasbaksys/Pet-Barbershop/internal/httperr"
	"github.com/tomasbaksys/Pet-Barbershop/internal/middleware"
	"github.com/tomasbaksys/Pet-Barbershop/internal/models"
)

type SalonHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSalonHandler(db *gorm.DB, audit *audit.Dispatcher) *SalonHandler {
	return &SalonHandler{db: db, audit: audit}
}

type CreateSalonRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateSalonRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *SalonHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	isOwner := c.MustGet(middleware.ContextIsOwner).(bool)

	if !isOwner {
		httperr.Forbidden(c, "not_salon_owner", "Only salon owners can create salons.")
		return
	}

	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid salon data.")
		return
	}

	salon := models.Salon{
		Name:    req.Name,
		OwnerID: userID,
	}

	if err := h.db.Create(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_create_salon", "Could not create salon.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  &salon.ID,
		UserID:   &userID,
		Action:   "salon_created",
		Entity:   "salon",
		EntityID: &salon.ID,
	})

	c.JSON(http.StatusCreated, salon)
}

// Rename is the only mutation a salon supports.
func (h *SalonHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	if salon.OwnerID != userID {
		httperr.Forbidden(c, "not_salon_owner", "You do not own this salon.")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid salon data.")
		return
	}

	salon.Name = req.Name
	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Could not update salon.")
		return
	}

	c.JSON(http.StatusOK, salon)
}
