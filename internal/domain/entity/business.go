package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business represents a tenant (e.g. a barbershop). Provisioning is owned
// by an external system; this service only reads the record.
type Business struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name                 string    `gorm:"type:varchar(255);not null" json:"name"`
	RequiresConfirmation bool      `gorm:"not null;default:false" json:"requires_confirmation"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Business) TableName() string {
	return "businesses"
}

// InitialAppointmentStatus is the status a fresh appointment gets for this
// business: scheduled when the professional must confirm manually,
// confirmed otherwise.
func (b *Business) InitialAppointmentStatus() AppointmentStatus {
	if b.RequiresConfirmation {
		return AppointmentStatusScheduled
	}
	return AppointmentStatusConfirmed
}
