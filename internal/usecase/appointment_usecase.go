package usecase

import (
	"context"
	"errors"
	"time"

	"salon-booking-engine/internal/availability"
	"salon-booking-engine/internal/converter"
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"
	"salon-booking-engine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound        = errors.New("business not found")
	ErrProfessionalNotFound    = errors.New("professional not found or inactive")
	ErrServiceNotFound         = errors.New("service not found or inactive")
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrOutsideWorkingHours     = errors.New("requested time is outside the professional's working hours")
	ErrTimeSlotTaken           = errors.New("requested time overlaps an existing appointment")
	ErrInvalidStatus           = errors.New("unknown appointment status")
	ErrInvalidStatusTransition = errors.New("status transition not permitted from the current state")
	ErrInvalidDate             = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat       = errors.New("invalid time format, use HH:MM")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, businessID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, businessID uuid.UUID, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	TransitionStatus(ctx context.Context, businessID, appointmentID uuid.UUID, newStatus entity.AppointmentStatus) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	businessRepo     repository.BusinessRepository
	professionalRepo repository.ProfessionalRepository
	serviceRepo      repository.ServiceRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	businessRepo repository.BusinessRepository,
	professionalRepo repository.ProfessionalRepository,
	serviceRepo repository.ServiceRepository,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		businessRepo:     businessRepo,
		professionalRepo: professionalRepo,
		serviceRepo:      serviceRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// CreateAppointment books a client against a professional's slot.
//
// Flow:
// 1. Validate professional and service exist, are active, and belong to the business
// 2. Validate the window fits inside the professional's working hours
// 3. Advisory overlap check against today's non-cancelled appointments
// 4. Snapshot duration and price from the service, insert
// 5. The database exclusion constraint re-validates atomically at commit:
//    a lost race surfaces as the same ErrTimeSlotTaken as step 3
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, businessID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.withContext(ctx)

	business, err := u.businessRepo.FindByID(db, businessID)
	if err != nil {
		u.log.Warnf("Failed to find business %s: %+v", businessID, err)
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

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
	start, err := entity.ParseClock(req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	// Step 2: working-window containment.
	window := professional.WorkingHours.Get(date.Weekday())
	if !window.Enabled {
		return nil, ErrOutsideWorkingHours
	}
	windowStart, err := entity.ParseClock(window.Start)
	if err != nil {
		return nil, err
	}
	windowEnd, err := entity.ParseClock(window.End)
	if err != nil {
		return nil, err
	}
	if start < windowStart || start+service.DurationMinutes > windowEnd {
		return nil, ErrOutsideWorkingHours
	}

	// Step 3: advisory overlap check. The exclusion constraint at insert
	// time is the real authority; this just answers fast in the common case.
	existing, err := u.appointmentRepo.FindActiveByProfessionalAndDate(db, professional.ID, date)
	if err != nil {
		u.log.Warnf("Failed to load appointments for professional %s on %s: %+v", professional.ID, req.Date, err)
		return nil, err
	}
	requested := availability.Interval{Start: start, End: start + service.DurationMinutes}
	for _, busy := range availability.BusyFromAppointments(existing) {
		if requested.Overlaps(busy) {
			return nil, ErrTimeSlotTaken
		}
	}

	appointment := &entity.Appointment{
		BusinessID:      businessID,
		ProfessionalID:  professional.ID,
		ServiceID:       service.ID,
		Date:            date,
		StartTime:       entity.FormatClock(start),
		DurationMinutes: service.DurationMinutes,
		Status:          business.InitialAppointmentStatus(),
		ClientName:      req.ClientName,
		TotalPrice:      service.Price,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		if errors.Is(err, repository.ErrOverlappingAppointment) {
			// Lost the race between the advisory check and the insert.
			return nil, ErrTimeSlotTaken
		}
		u.log.Errorf("Failed to insert appointment for professional %s: %+v", professional.ID, err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s, professional=%s, date=%s %s, status=%s",
		appointment.ID, professional.ID, req.Date, appointment.StartTime, appointment.Status)

	appointment.Professional = *professional
	appointment.Service = *service
	return converter.AppointmentToResponse(appointment), nil
}

// ListAppointments returns the business's appointments, ordered by date
// and start time.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, businessID uuid.UUID, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByBusiness(u.withContext(ctx), businessID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments for business %s: %+v", businessID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// TransitionStatus advances the appointment state machine. Rescheduling
// of date/time/professional/service is deliberately not supported:
// cancel and create a new appointment instead, so the non-overlap
// guarantee is only ever established through the atomic create path.
func (u *appointmentUsecase) TransitionStatus(ctx context.Context, businessID, appointmentID uuid.UUID, newStatus entity.AppointmentStatus) (*dto.AppointmentResponse, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	db := u.withContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil || appointment.BusinessID != businessID {
		return nil, ErrAppointmentNotFound
	}

	if !entity.CanTransition(appointment.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	affected, err := u.appointmentRepo.UpdateStatus(db, appointmentID, appointment.Status, newStatus)
	if err != nil {
		u.log.Warnf("Failed to update status of appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if affected == 0 {
		// A concurrent writer changed the status after our read; the
		// precondition no longer holds.
		return nil, ErrInvalidStatusTransition
	}

	u.log.Infof("Appointment %s: %s -> %s", appointmentID, appointment.Status, newStatus)

	appointment.Status = newStatus
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) withContext(ctx context.Context) *gorm.DB {
	if u.db == nil {
		return nil
	}
	return u.db.WithContext(ctx)
}
