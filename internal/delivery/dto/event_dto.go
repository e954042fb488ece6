package dto

import (
	"time"

	"salon-booking-engine/internal/domain/entity"

	"github.com/google/uuid"
)

// Response DTOs

type AppointmentEventResponse struct {
	ID            int64       `json:"id"`
	AppointmentID uuid.UUID   `json:"appointment_id"`
	Action        string      `json:"action"`
	Metadata      entity.JSON `json:"metadata,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

type AppointmentEventListResponse struct {
	Events []AppointmentEventResponse `json:"events"`
	Total  int                        `json:"total"`
}
