package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is a bookable offering of a business (e.g. "Haircut, 30 min").
// Appointments snapshot DurationMinutes and Price at creation time, so
// later edits here never change historical appointments.
type Service struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BusinessID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"business_id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	DurationMinutes int             `gorm:"not null" json:"duration_minutes"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	IsActive        *bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}

func (Service) TableName() string {
	return "services"
}

// Active reports whether the service can be booked.
func (s *Service) Active() bool {
	return s.IsActive != nil && *s.IsActive
}
