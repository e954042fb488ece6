package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required"`
	ServiceID      uuid.UUID `json:"service_id" validate:"required"`
	Date           string    `json:"date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	StartTime      string    `json:"start_time" validate:"required,clock"`         // Format: HH:MM
	ClientName     string    `json:"client_name" validate:"required,min=2,max=255"`
	Notes          string    `json:"notes" validate:"omitempty,max=1000"`
}

type TransitionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID             `json:"id"`
	BusinessID      uuid.UUID             `json:"business_id"`
	ProfessionalID  uuid.UUID             `json:"professional_id"`
	ServiceID       uuid.UUID             `json:"service_id"`
	Date            string                `json:"date"`
	StartTime       string                `json:"start_time"`
	EndTime         string                `json:"end_time"`
	DurationMinutes int                   `json:"duration_minutes"`
	Status          string                `json:"status"`
	ClientName      string                `json:"client_name"`
	TotalPrice      decimal.Decimal       `json:"total_price"`
	Notes           string                `json:"notes,omitempty"`
	Professional    *ProfessionalResponse `json:"professional,omitempty"`
	Service         *ServiceResponse      `json:"service,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
