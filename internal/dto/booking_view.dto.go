package dto

import "time"

type BookingViewDTO struct {
	ID              uint      `json:"id"`
	AppointmentTime time.Time `json:"appointment_time"`
	EndTime         time.Time `json:"end_time"`
	ServiceName     string    `json:"service_name"`
	SalonName       string    `json:"salon_name"`
	IsCancelled     bool      `json:"is_cancelled"`
}
