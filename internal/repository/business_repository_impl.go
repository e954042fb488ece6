package repository

import (
	"errors"

	"salon-booking-engine/internal/domain/entity"
	domainRepo "salon-booking-engine/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type businessRepository struct{}

func NewBusinessRepository() domainRepo.BusinessRepository {
	return &businessRepository{}
}

func (r *businessRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Business, error) {
	var business entity.Business
	err := db.Where("id = ?", id).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindAll(db *gorm.DB) ([]entity.Business, error) {
	var businesses []entity.Business
	err := db.Order("name ASC").Find(&businesses).Error
	if err != nil {
		return nil, err
	}
	return businesses, nil
}
