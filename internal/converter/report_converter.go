package converter

import (
	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"
	"salon-booking-engine/internal/report"
)

// SummaryToResponse converts a report.Summary to FinancialSummaryResponse DTO
func SummaryToResponse(business *entity.Business, summary *report.Summary) *dto.FinancialSummaryResponse {
	if summary == nil {
		return nil
	}

	byProfessional := make([]dto.ProfessionalTotalResponse, len(summary.ByProfessional))
	for i, total := range summary.ByProfessional {
		byProfessional[i] = dto.ProfessionalTotalResponse{
			ProfessionalID: total.ProfessionalID,
			Name:           total.Name,
			Count:          total.Count,
			TotalRevenue:   total.TotalRevenue,
		}
	}

	byMonth := make([]dto.MonthTotalResponse, len(summary.ByMonth))
	for i, total := range summary.ByMonth {
		byMonth[i] = dto.MonthTotalResponse{
			Month:        int(total.Month),
			Count:        total.Count,
			TotalRevenue: total.TotalRevenue,
		}
	}

	byService := make([]dto.ServiceTotalResponse, len(summary.ByService))
	for i, total := range summary.ByService {
		byService[i] = dto.ServiceTotalResponse{
			ServiceID:    total.ServiceID,
			Name:         total.Name,
			Count:        total.Count,
			UnitPrice:    total.UnitPrice,
			TotalRevenue: total.TotalRevenue,
		}
	}

	return &dto.FinancialSummaryResponse{
		BusinessID:     business.ID,
		BusinessName:   business.Name,
		ReferenceMonth: int(summary.ReferenceMonth),
		ReferenceYear:  summary.ReferenceYear,
		MonthCount:     summary.MonthCount,
		MonthRevenue:   summary.MonthRevenue,
		GrowthPercent:  summary.GrowthPercent,
		ByProfessional: byProfessional,
		ByMonth:        byMonth,
		ByService:      byService,
	}
}
