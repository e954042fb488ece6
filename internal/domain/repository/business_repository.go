package repository

import (
	"salon-booking-engine/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessRepository is read-only: business provisioning belongs to an
// external system.
type BusinessRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Business, error)
	FindAll(db *gorm.DB) ([]entity.Business, error)
}
