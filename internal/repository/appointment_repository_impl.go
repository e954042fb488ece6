package repository

import (
	"errors"
	"time"

	"salon-booking-engine/internal/domain/entity"
	domainRepo "salon-booking-engine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgExclusionViolation is the SQLSTATE raised when the btree_gist
// exclusion constraint on appointments rejects an overlapping insert.
const pgExclusionViolation = "23P01"

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	err := db.Create(appointment).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domainRepo.ErrOverlappingAppointment
		}
		return err
	}
	return nil
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Professional").Preload("Service").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByBusiness(db *gorm.DB, businessID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Where("business_id = ?", businessID)

	if filter != nil {
		if filter.StartAt != "" {
			query = query.Where("date >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			query = query.Where("date <= ?", filter.EndAt)
		}
		if filter.ProfessionalID != "" {
			query = query.Where("professional_id = ?", filter.ProfessionalID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var appointments []entity.Appointment
	err := query.
		Preload("Professional").Preload("Service").
		Order("date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindActiveByProfessionalAndDate(db *gorm.DB, professionalID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("professional_id = ? AND date = ? AND status != ?",
			professionalID, date.Format("2006-01-02"), entity.AppointmentStatusCancelled).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindCompletedByBusinessAndDateRange(db *gorm.DB, businessID uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Where("business_id = ? AND status = ? AND date >= ? AND date <= ?",
			businessID, entity.AppointmentStatusCompleted,
			from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateStatus atomically transitions the status ONLY if the current
// status still matches oldStatus. Returns affected rows: 1 = success,
// 0 = a concurrent writer got there first.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, oldStatus, newStatus entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status = ?", id, oldStatus).
		Update("status", newStatus)
	return result.RowsAffected, result.Error
}
