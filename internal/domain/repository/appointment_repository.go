package repository

import (
	"errors"
	"time"

	"salon-booking-engine/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrOverlappingAppointment is returned by Create when the database-level
// exclusion constraint rejects the insert because another non-cancelled
// appointment already occupies part of the interval. This is the atomic
// authority; callers' pre-flight checks are advisory only.
var ErrOverlappingAppointment = errors.New("appointment overlaps an existing appointment")

type AppointmentRepository interface {
	// Create inserts the appointment, returning ErrOverlappingAppointment
	// when the non-overlap constraint rejects it.
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByBusiness(db *gorm.DB, businessID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// FindActiveByProfessionalAndDate returns the professional's
	// non-cancelled appointments on a date, ordered by start time.
	FindActiveByProfessionalAndDate(db *gorm.DB, professionalID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	// FindCompletedByBusinessAndDateRange returns completed appointments
	// with date in [from, to], ordered by date.
	FindCompletedByBusinessAndDateRange(db *gorm.DB, businessID uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	// UpdateStatus transitions id from oldStatus to newStatus. Returns
	// affected rows: 0 means the precondition no longer held.
	UpdateStatus(db *gorm.DB, id uuid.UUID, oldStatus, newStatus entity.AppointmentStatus) (int64, error)
}
