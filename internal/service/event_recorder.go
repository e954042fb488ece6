package service

import (
	"context"

	"salon-booking-engine/internal/domain/entity"
	"salon-booking-engine/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EventRecorder persists detector events into the per-business event
// trail. Write failures are logged and dropped; the detector's snapshot
// already advanced and the poll model tolerates gaps in the trail.
type EventRecorder struct {
	db        *gorm.DB
	log       *logrus.Logger
	eventRepo repository.AppointmentEventRepository
}

func NewEventRecorder(db *gorm.DB, log *logrus.Logger, eventRepo repository.AppointmentEventRepository) *EventRecorder {
	return &EventRecorder{
		db:        db,
		log:       log,
		eventRepo: eventRepo,
	}
}

func (r *EventRecorder) Notify(ctx context.Context, event ChangeEvent) {
	record := &entity.AppointmentEvent{
		BusinessID:    event.Appointment.BusinessID,
		AppointmentID: event.Appointment.ID,
	}

	switch event.Type {
	case ChangeEventCreated:
		record.Action = entity.EventActionAppointmentCreated
		record.Metadata = entity.JSON{
			"professional_id": event.Appointment.ProfessionalID.String(),
			"service_id":      event.Appointment.ServiceID.String(),
			"date":            event.Appointment.Date.Format("2006-01-02"),
			"start_time":      event.Appointment.StartTime,
			"status":          string(event.NewStatus),
		}
	case ChangeEventStatusChanged:
		record.Action = entity.EventActionAppointmentStatusChanged
		record.Metadata = entity.JSON{
			"old_status": string(event.OldStatus),
			"new_status": string(event.NewStatus),
		}
	default:
		return
	}

	if err := r.eventRepo.Create(r.db.WithContext(ctx), record); err != nil {
		r.log.Warnf("Failed to record appointment event %s for %s: %+v",
			record.Action, event.Appointment.ID, err)
	}
}
