package converter

import (
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"
)

// ServiceToResponse converts a Service entity to ServiceResponse DTO
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.ServiceResponse{
		ID:              service.ID,
		BusinessID:      service.BusinessID,
		Name:            service.Name,
		DurationMinutes: service.DurationMinutes,
		Price:           service.Price,
		IsActive:        service.Active(),
		CreatedAt:       service.CreatedAt,
		UpdatedAt:       service.UpdatedAt,
	}
}

// ServicesToResponses converts a slice of Service entities to slice of ServiceResponse DTOs
func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, service := range services {
		resp := ServiceToResponse(&service)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
