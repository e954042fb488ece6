package converter

import (
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	// EndTime is derived, never stored. StartTime was validated on write.
	endTime, _ := appointment.EndTime()

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		BusinessID:      appointment.BusinessID,
		ProfessionalID:  appointment.ProfessionalID,
		ServiceID:       appointment.ServiceID,
		Date:            appointment.Date.Format("2006-01-02"),
		StartTime:       appointment.StartTime,
		EndTime:         endTime,
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		ClientName:      appointment.ClientName,
		TotalPrice:      appointment.TotalPrice,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	// Include related records if preloaded
	if appointment.Professional.ID != uuid.Nil {
		response.Professional = ProfessionalToResponse(&appointment.Professional)
	}
	if appointment.Service.ID != uuid.Nil {
		response.Service = ServiceToResponse(&appointment.Service)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
