package usecase

import (
	"context"

	"salon-booking-engine/internal/converter"
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"
	"salon-booking-engine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfessionalUsecase interface {
	CreateProfessional(ctx context.Context, businessID uuid.UUID, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error)
	ListProfessionals(ctx context.Context, businessID uuid.UUID) (*dto.ProfessionalListResponse, error)
	GetProfessional(ctx context.Context, businessID, professionalID uuid.UUID) (*dto.ProfessionalResponse, error)
	UpdateProfessional(ctx context.Context, businessID, professionalID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	GetWorkingHours(ctx context.Context, businessID, professionalID uuid.UUID) (*dto.WorkingHoursResponse, error)
	UpdateWorkingHours(ctx context.Context, businessID, professionalID uuid.UUID, req *dto.UpdateWorkingHoursRequest) (*dto.WorkingHoursResponse, error)
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	businessRepo     repository.BusinessRepository
	professionalRepo repository.ProfessionalRepository
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	businessRepo repository.BusinessRepository,
	professionalRepo repository.ProfessionalRepository,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		businessRepo:     businessRepo,
		professionalRepo: professionalRepo,
	}
}

func (u *professionalUsecase) CreateProfessional(ctx context.Context, businessID uuid.UUID, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	db := u.withContext(ctx)

	business, err := u.businessRepo.FindByID(db, businessID)
	if err != nil {
		u.log.Warnf("Failed to find business %s: %+v", businessID, err)
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	workingHours, err := buildWorkingHours(req.WorkingHours)
	if err != nil {
		return nil, err
	}

	isActive := true
	professional := &entity.Professional{
		BusinessID:   businessID,
		UserID:       req.UserID,
		Name:         req.Name,
		WorkingHours: workingHours,
		IsActive:     &isActive,
	}

	if err := u.professionalRepo.Create(db, professional); err != nil {
		u.log.Errorf("Failed to insert professional for business %s: %+v", businessID, err)
		return nil, err
	}

	u.log.Infof("Professional created: id=%s, business=%s", professional.ID, businessID)
	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) ListProfessionals(ctx context.Context, businessID uuid.UUID) (*dto.ProfessionalListResponse, error) {
	professionals, err := u.professionalRepo.FindByBusiness(u.withContext(ctx), businessID)
	if err != nil {
		u.log.Warnf("Failed to list professionals for business %s: %+v", businessID, err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(professionals),
		Total:         len(professionals),
	}, nil
}

func (u *professionalUsecase) GetProfessional(ctx context.Context, businessID, professionalID uuid.UUID) (*dto.ProfessionalResponse, error) {
	professional, err := u.findOwned(u.withContext(ctx), businessID, professionalID)
	if err != nil {
		return nil, err
	}
	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) UpdateProfessional(ctx context.Context, businessID, professionalID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	db := u.withContext(ctx)

	professional, err := u.findOwned(db, businessID, professionalID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		professional.Name = req.Name
	}
	if req.IsActive != nil {
		professional.IsActive = req.IsActive
	}

	if err := u.professionalRepo.Update(db, professional); err != nil {
		u.log.Errorf("Failed to update professional %s: %+v", professionalID, err)
		return nil, err
	}

	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) GetWorkingHours(ctx context.Context, businessID, professionalID uuid.UUID) (*dto.WorkingHoursResponse, error) {
	professional, err := u.findOwned(u.withContext(ctx), businessID, professionalID)
	if err != nil {
		return nil, err
	}

	return &dto.WorkingHoursResponse{
		ProfessionalID: professional.ID,
		WorkingHours:   converter.WorkingHoursToItems(professional.WorkingHours),
	}, nil
}

// UpdateWorkingHours replaces the whole weekly calendar. Days absent from
// the request become disabled; the change never touches existing
// appointments, it only shapes future availability.
func (u *professionalUsecase) UpdateWorkingHours(ctx context.Context, businessID, professionalID uuid.UUID, req *dto.UpdateWorkingHoursRequest) (*dto.WorkingHoursResponse, error) {
	db := u.withContext(ctx)

	professional, err := u.findOwned(db, businessID, professionalID)
	if err != nil {
		return nil, err
	}

	workingHours, err := buildWorkingHours(req.WorkingHours)
	if err != nil {
		return nil, err
	}

	professional.WorkingHours = workingHours
	if err := u.professionalRepo.Update(db, professional); err != nil {
		u.log.Errorf("Failed to update working hours of professional %s: %+v", professionalID, err)
		return nil, err
	}

	u.log.Infof("Working hours updated: professional=%s", professionalID)
	return &dto.WorkingHoursResponse{
		ProfessionalID: professional.ID,
		WorkingHours:   converter.WorkingHoursToItems(professional.WorkingHours),
	}, nil
}

func (u *professionalUsecase) findOwned(db *gorm.DB, businessID, professionalID uuid.UUID) (*entity.Professional, error) {
	professional, err := u.professionalRepo.FindByID(db, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if professional == nil || professional.BusinessID != businessID {
		return nil, ErrProfessionalNotFound
	}
	return professional, nil
}

// buildWorkingHours validates every enabled day through entity.Set so an
// invalid window rejects the whole request.
func buildWorkingHours(items []dto.WorkingHoursItem) (entity.WorkingHours, error) {
	workingHours := entity.NewWorkingHours()
	candidate := converter.WorkingHoursFromItems(items)
	for day, hours := range candidate {
		if err := workingHours.Set(day, hours); err != nil {
			return nil, err
		}
	}
	return workingHours, nil
}

func (u *professionalUsecase) withContext(ctx context.Context) *gorm.DB {
	if u.db == nil {
		return nil
	}
	return u.db.WithContext(ctx)
}
