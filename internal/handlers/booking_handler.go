package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tomasbaksys/Pet-Barbershop/internal/httperr"
	"github.com/tomasbaksys/Pet-Barbershop/internal/middleware"
	"github.com/tomasbaksys/Pet-Barbershop/internal/timeutil"
	ucBooking "github.com/tomasbaksys/Pet-Barbershop/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	listUC   *ucBooking.ListBookingsForUser
	cancelUC *ucBooking.CancelBooking
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookingsForUser,
	cancelUC *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
		cancelUC: cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID       uint   `json:"service_id" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"` // RFC 3339
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	start, err := timeutil.ParseAppointmentTime(req.AppointmentTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_time", "Appointment time must be RFC 3339.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:          userID,
		ServiceID:       req.ServiceID,
		AppointmentTime: start,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking_id":       b.ID,
		"appointment_time": b.StartTime,
		"end_time":         b.EndTime,
	})
}

// ======================================================
// LIST (MINE)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	views, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	c.JSON(http.StatusOK, views)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

// ======================================================
// ERROR MAPPING
// ======================================================

// mapBookingError translates the lifecycle taxonomy into transport statuses.
// Store internals never reach the client.
func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Service not found.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Time slot already booked.")
	case httperr.IsBusiness(err, "invalid_duration"):
		httperr.BadRequest(c, "invalid_duration", "Service duration must be positive.")
	case httperr.IsBusiness(err, "store_unavailable"):
		httperr.Unavailable(c, "store_unavailable", "Booking store temporarily unavailable.")
	default:
		httperr.Internal(c, "booking_failed", "Could not process booking.")
	}
}
