package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=255"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=1,max=1440"`
	Price           string `json:"price" validate:"required"` // Decimal string, e.g. "50.00"
}

type UpdateServiceRequest struct {
	Name            string `json:"name" validate:"omitempty,min=2,max=255"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
	Price           string `json:"price" validate:"omitempty"`
	IsActive        *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type ServiceResponse struct {
	ID              uuid.UUID       `json:"id"`
	BusinessID      uuid.UUID       `json:"business_id"`
	Name            string          `json:"name"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
