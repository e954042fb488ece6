package usecase

import (
	"context"

	"salon-booking-engine/internal/converter"
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultEventListLimit = 100

type EventUsecase interface {
	ListEvents(ctx context.Context, businessID uuid.UUID, limit int) (*dto.AppointmentEventListResponse, error)
}

type eventUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	eventRepo repository.AppointmentEventRepository
}

func NewEventUsecase(db *gorm.DB, log *logrus.Logger, eventRepo repository.AppointmentEventRepository) EventUsecase {
	return &eventUsecase{
		db:        db,
		log:       log,
		eventRepo: eventRepo,
	}
}

// ListEvents returns the newest entries of the business's event trail.
func (u *eventUsecase) ListEvents(ctx context.Context, businessID uuid.UUID, limit int) (*dto.AppointmentEventListResponse, error) {
	if limit <= 0 {
		limit = defaultEventListLimit
	}

	events, err := u.eventRepo.FindByBusiness(u.db.WithContext(ctx), businessID, limit)
	if err != nil {
		u.log.Warnf("Failed to list events for business %s: %+v", businessID, err)
		return nil, err
	}

	return &dto.AppointmentEventListResponse{
		Events: converter.AppointmentEventsToResponses(events),
		Total:  len(events),
	}, nil
}
