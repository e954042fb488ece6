package entity

import (
	"time"

	"github.com/google/uuid"
)

// Professional represents a bookable staff member of a business. The user
// account behind UserID lives in the external auth service.
type Professional struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BusinessID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"business_id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	WorkingHours WorkingHours `gorm:"type:jsonb" json:"working_hours"`
	IsActive     *bool        `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}

// Active reports whether the professional can take bookings.
func (p *Professional) Active() bool {
	return p.IsActive != nil && *p.IsActive
}
