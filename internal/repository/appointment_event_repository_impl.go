package repository

import (
	"salon-booking-engine/internal/domain/entity"
	domainRepo "salon-booking-engine/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentEventRepository struct{}

func NewAppointmentEventRepository() domainRepo.AppointmentEventRepository {
	return &appointmentEventRepository{}
}

func (r *appointmentEventRepository) Create(db *gorm.DB, event *entity.AppointmentEvent) error {
	return db.Create(event).Error
}

func (r *appointmentEventRepository) FindByBusiness(db *gorm.DB, businessID uuid.UUID, limit int) ([]entity.AppointmentEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	var events []entity.AppointmentEvent
	err := db.Where("business_id = ?", businessID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
