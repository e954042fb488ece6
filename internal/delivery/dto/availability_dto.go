package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type AvailableSlotsRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required"`
	ServiceID      uuid.UUID `json:"service_id" validate:"required"`
	Date           string    `json:"date" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	StepMinutes    int       `json:"step_minutes" validate:"omitempty,min=1,max=240"`
}

// Response DTOs

type SlotResponse struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

type SlotListResponse struct {
	ProfessionalID uuid.UUID      `json:"professional_id"`
	ServiceID      uuid.UUID      `json:"service_id"`
	Date           string         `json:"date"`
	Slots          []SlotResponse `json:"slots"`
	Total          int            `json:"total"`
}
