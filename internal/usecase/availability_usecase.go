package usecase

import (
	"context"
	"time"

	"salon-booking-engine/internal/availability"
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"
	"salon-booking-engine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AvailabilityUsecase interface {
	ComputeAvailableSlots(ctx context.Context, businessID uuid.UUID, req *dto.AvailableSlotsRequest) (*dto.SlotListResponse, error)
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
	serviceRepo      repository.ServiceRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	professionalRepo repository.ProfessionalRepository,
	serviceRepo repository.ServiceRepository,
	appointmentRepo repository.AppointmentRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// ComputeAvailableSlots returns the bookable windows for a professional,
// service and date. The result is advisory: it can go stale between
// being shown to the client and the booking request, and the ledger
// re-validates atomically at creation.
func (u *availabilityUsecase) ComputeAvailableSlots(ctx context.Context, businessID uuid.UUID, req *dto.AvailableSlotsRequest) (*dto.SlotListResponse, error) {
	db := u.withContext(ctx)

	professional, err := u.professionalRepo.FindByID(db, req.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", req.ProfessionalID, err)
		return nil, err
	}
	if professional == nil || professional.BusinessID != businessID || !professional.Active() {
		return nil, ErrProfessionalNotFound
	}

	service, err := u.serviceRepo.FindByID(db, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", req.ServiceID, err)
		return nil, err
	}
	if service == nil || service.BusinessID != businessID || !service.Active() {
		return nil, ErrServiceNotFound
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	existing, err := u.appointmentRepo.FindActiveByProfessionalAndDate(db, professional.ID, date)
	if err != nil {
		u.log.Warnf("Failed to load appointments for professional %s on %s: %+v", professional.ID, req.Date, err)
		return nil, err
	}

	slots, err := availability.ComputeSlots(
		professional.WorkingHours.Get(date.Weekday()),
		availability.BusyFromAppointments(existing),
		service.DurationMinutes,
		req.StepMinutes,
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			StartTime:       entity.FormatClock(slot.Start),
			EndTime:         entity.FormatClock(slot.End),
			DurationMinutes: service.DurationMinutes,
		}
	}

	return &dto.SlotListResponse{
		ProfessionalID: professional.ID,
		ServiceID:      service.ID,
		Date:           req.Date,
		Slots:          responses,
		Total:          len(responses),
	}, nil
}

func (u *availabilityUsecase) withContext(ctx context.Context) *gorm.DB {
	if u.db == nil {
		return nil
	}
	return u.db.WithContext(ctx)
}
