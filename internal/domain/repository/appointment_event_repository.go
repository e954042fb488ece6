package repository

import (
	"salon-booking-engine/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentEventRepository interface {
	Create(db *gorm.DB, event *entity.AppointmentEvent) error
	FindByBusiness(db *gorm.DB, businessID uuid.UUID, limit int) ([]entity.AppointmentEvent, error)
}
