package converter

import (
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"
)

// AppointmentEventToResponse converts an AppointmentEvent entity to AppointmentEventResponse DTO
func AppointmentEventToResponse(event *entity.AppointmentEvent) *dto.AppointmentEventResponse {
	if event == nil {
		return nil
	}

	return &dto.AppointmentEventResponse{
		ID:            event.ID,
		AppointmentID: event.AppointmentID,
		Action:        event.Action,
		Metadata:      event.Metadata,
		CreatedAt:     event.CreatedAt,
	}
}

// AppointmentEventsToResponses converts a slice of AppointmentEvent entities to slice of AppointmentEventResponse DTOs
func AppointmentEventsToResponses(events []entity.AppointmentEvent) []dto.AppointmentEventResponse {
	responses := make([]dto.AppointmentEventResponse, len(events))
	for i, event := range events {
		resp := AppointmentEventToResponse(&event)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
