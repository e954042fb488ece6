package repository

import (
	"salon-booking-engine/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Service, error)
	FindByBusiness(db *gorm.DB, businessID uuid.UUID) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
}
