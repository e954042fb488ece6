package usecase

import (
	"context"
	"errors"

	"salon-booking-engine/internal/converter"
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"
	"salon-booking-engine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidPrice = errors.New("invalid price, use a non-negative decimal string")

type ServiceUsecase interface {
	CreateService(ctx context.Context, businessID uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context, businessID uuid.UUID) (*dto.ServiceListResponse, error)
	GetService(ctx context.Context, businessID, serviceID uuid.UUID) (*dto.ServiceResponse, error)
	UpdateService(ctx context.Context, businessID, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
}

type serviceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	businessRepo repository.BusinessRepository
	serviceRepo  repository.ServiceRepository
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	businessRepo repository.BusinessRepository,
	serviceRepo repository.ServiceRepository,
) ServiceUsecase {
	return &serviceUsecase{
		db:           db,
		log:          log,
		businessRepo: businessRepo,
		serviceRepo:  serviceRepo,
	}
}

func (u *serviceUsecase) CreateService(ctx context.Context, businessID uuid.UUID, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	db := u.withContext(ctx)

	business, err := u.businessRepo.FindByID(db, businessID)
	if err != nil {
		u.log.Warnf("Failed to find business %s: %+v", businessID, err)
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	isActive := true
	service := &entity.Service{
		BusinessID:      businessID,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Price:           price,
		IsActive:        &isActive,
	}

	if err := u.serviceRepo.Create(db, service); err != nil {
		u.log.Errorf("Failed to insert service for business %s: %+v", businessID, err)
		return nil, err
	}

	u.log.Infof("Service created: id=%s, business=%s", service.ID, businessID)
	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) ListServices(ctx context.Context, businessID uuid.UUID) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindByBusiness(u.withContext(ctx), businessID)
	if err != nil {
		u.log.Warnf("Failed to list services for business %s: %+v", businessID, err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceUsecase) GetService(ctx context.Context, businessID, serviceID uuid.UUID) (*dto.ServiceResponse, error) {
	service, err := u.findOwned(u.withContext(ctx), businessID, serviceID)
	if err != nil {
		return nil, err
	}
	return converter.ServiceToResponse(service), nil
}

// UpdateService edits the catalog entry. Appointments snapshot price and
// duration at creation, so edits here never rewrite history.
func (u *serviceUsecase) UpdateService(ctx context.Context, businessID, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	db := u.withContext(ctx)

	service, err := u.findOwned(db, businessID, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.DurationMinutes > 0 {
		service.DurationMinutes = req.DurationMinutes
	}
	if req.Price != "" {
		price, err := parsePrice(req.Price)
		if err != nil {
			return nil, err
		}
		service.Price = price
	}
	if req.IsActive != nil {
		service.IsActive = req.IsActive
	}

	if err := u.serviceRepo.Update(db, service); err != nil {
		u.log.Errorf("Failed to update service %s: %+v", serviceID, err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceUsecase) findOwned(db *gorm.DB, businessID, serviceID uuid.UUID) (*entity.Service, error) {
	service, err := u.serviceRepo.FindByID(db, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", serviceID, err)
		return nil, err
	}
	if service == nil || service.BusinessID != businessID {
		return nil, ErrServiceNotFound
	}
	return service, nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return price, nil
}

func (u *serviceUsecase) withContext(ctx context.Context) *gorm.DB {
	if u.db == nil {
		return nil
	}
	return u.db.WithContext(ctx)
}
