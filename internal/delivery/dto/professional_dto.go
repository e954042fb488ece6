package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateProfessionalRequest struct {
	UserID       uuid.UUID          `json:"user_id" validate:"required"`
	Name         string             `json:"name" validate:"required,min=2,max=255"`
	WorkingHours []WorkingHoursItem `json:"working_hours" validate:"omitempty,dive"`
}

type UpdateProfessionalRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=255"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

type UpdateWorkingHoursRequest struct {
	WorkingHours []WorkingHoursItem `json:"working_hours" validate:"required,dive"`
}

// WorkingHoursItem is one weekday of the professional's calendar. Days
// absent from a request are treated as disabled.
type WorkingHoursItem struct {
	Day     string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Enabled bool   `json:"enabled"`
	Start   string `json:"start" validate:"omitempty,clock"` // Format: HH:MM
	End     string `json:"end" validate:"omitempty,clock"`   // Format: HH:MM
}

// Response DTOs

type ProfessionalResponse struct {
	ID           uuid.UUID          `json:"id"`
	BusinessID   uuid.UUID          `json:"business_id"`
	UserID       uuid.UUID          `json:"user_id"`
	Name         string             `json:"name"`
	WorkingHours []WorkingHoursItem `json:"working_hours,omitempty"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}

type WorkingHoursResponse struct {
	ProfessionalID uuid.UUID          `json:"professional_id"`
	WorkingHours   []WorkingHoursItem `json:"working_hours"`
}
