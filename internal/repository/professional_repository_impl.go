package repository

import (
	"errors"

	"salon-booking-engine/internal/domain/entity"
	domainRepo "salon-booking-engine/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(db *gorm.DB, professional *entity.Professional) error {
	return db.Create(professional).Error
}

func (r *professionalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.Where("id = ?", id).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindByBusiness(db *gorm.DB, businessID uuid.UUID) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := db.Where("business_id = ?", businessID).Order("name ASC").Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) Update(db *gorm.DB, professional *entity.Professional) error {
	return db.Omit("Business").Save(professional).Error
}
