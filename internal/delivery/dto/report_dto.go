package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs

type ProfessionalTotalResponse struct {
	ProfessionalID uuid.UUID       `json:"professional_id"`
	Name           string          `json:"name"`
	Count          int             `json:"count"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
}

type MonthTotalResponse struct {
	Month        int             `json:"month"`
	Count        int             `json:"count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type ServiceTotalResponse struct {
	ServiceID    uuid.UUID       `json:"service_id"`
	Name         string          `json:"name"`
	Count        int             `json:"count"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// FinancialSummaryResponse reports completed-appointment revenue for one
// reference month plus the calendar-month breakdown of its year.
type FinancialSummaryResponse struct {
	BusinessID     uuid.UUID                   `json:"business_id"`
	BusinessName   string                      `json:"business_name"`
	ReferenceMonth int                         `json:"reference_month"`
	ReferenceYear  int                         `json:"reference_year"`
	MonthCount     int                         `json:"month_count"`
	MonthRevenue   decimal.Decimal             `json:"month_revenue"`
	GrowthPercent  float64                     `json:"growth_percent"`
	ByProfessional []ProfessionalTotalResponse `json:"by_professional"`
	ByMonth        []MonthTotalResponse        `json:"by_month"`
	ByService      []ServiceTotalResponse      `json:"by_service"`
}
