package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus is the lifecycle state of an appointment.
// Transitions move forward only; completed and cancelled are terminal.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is a known status value.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// statusTransitions: scheduled -> confirmed -> completed,
// scheduled|confirmed -> cancelled.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled: {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to AppointmentStatus) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Appointment represents one client booking against a professional.
// DurationMinutes and TotalPrice are snapshots taken from the Service at
// creation time. The end time is always derived from StartTime plus
// DurationMinutes and never stored on its own.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BusinessID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"business_id"`
	ProfessionalID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"professional_id"`
	ServiceID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"service_id"`
	Date            time.Time         `gorm:"type:date;not null;index" json:"date"`
	StartTime       string            `gorm:"type:time;not null" json:"start_time"` // Format: HH:MM
	DurationMinutes int               `gorm:"not null" json:"duration_minutes"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	ClientName      string            `gorm:"type:varchar(255);not null" json:"client_name"`
	TotalPrice      decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Service      Service      `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// EndTime derives the appointment end as "HH:MM".
func (a *Appointment) EndTime() (string, error) {
	return ClockAdd(a.StartTime, a.DurationMinutes)
}

// OccupiesSlot reports whether the appointment blocks its interval.
// Cancelled appointments free their former interval.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != AppointmentStatusCancelled
}

// IsCompleted reports whether the appointment counts toward revenue.
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}
