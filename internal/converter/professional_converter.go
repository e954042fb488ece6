package converter

import (
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"
)

// ProfessionalToResponse converts a Professional entity to ProfessionalResponse DTO
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:           professional.ID,
		BusinessID:   professional.BusinessID,
		UserID:       professional.UserID,
		Name:         professional.Name,
		WorkingHours: WorkingHoursToItems(professional.WorkingHours),
		IsActive:     professional.Active(),
		CreatedAt:    professional.CreatedAt,
		UpdatedAt:    professional.UpdatedAt,
	}
}

// ProfessionalsToResponses converts a slice of Professional entities to slice of ProfessionalResponse DTOs
func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i, professional := range professionals {
		resp := ProfessionalToResponse(&professional)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// WorkingHoursToItems converts the domain calendar to its ordered wire list
func WorkingHoursToItems(hours entity.WorkingHours) []dto.WorkingHoursItem {
	entries := hours.ToWire()
	items := make([]dto.WorkingHoursItem, len(entries))
	for i, entry := range entries {
		items[i] = dto.WorkingHoursItem{
			Day:     entry.Day,
			Enabled: entry.Enabled,
			Start:   entry.Start,
			End:     entry.End,
		}
	}
	return items
}

// WorkingHoursFromItems converts the wire list back to the domain calendar
func WorkingHoursFromItems(items []dto.WorkingHoursItem) entity.WorkingHours {
	entries := make([]entity.WorkingHoursEntry, len(items))
	for i, item := range items {
		entries[i] = entity.WorkingHoursEntry{
			Day:     item.Day,
			Enabled: item.Enabled,
			Start:   item.Start,
			End:     item.End,
		}
	}
	return entity.WorkingHoursFromWire(entries)
}
