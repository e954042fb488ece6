package repository

import (
	"salon-booking-engine/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(db *gorm.DB, professional *entity.Professional) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Professional, error)
	FindByBusiness(db *gorm.DB, businessID uuid.UUID) ([]entity.Professional, error)
	Update(db *gorm.DB, professional *entity.Professional) error
}
