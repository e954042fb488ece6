// Package report derives financial and operational aggregates from
// completed appointments. Summarize is a pure function over its input
// snapshot; any number of callers may run it concurrently.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"salon-booking-engine/internal/domain/entity"
)

// RefData resolves ids to display names. Appointments carry only ids;
// the caller provides the directory view.
type RefData struct {
	ProfessionalNames map[uuid.UUID]string
	ServiceNames      map[uuid.UUID]string
}

type ProfessionalTotal struct {
	ProfessionalID uuid.UUID
	Name           string
	Count          int
	TotalRevenue   decimal.Decimal
}

type MonthTotal struct {
	Month        time.Month
	Count        int
	TotalRevenue decimal.Decimal
}

type ServiceTotal struct {
	ServiceID    uuid.UUID
	Name         string
	Count        int
	UnitPrice    decimal.Decimal
	TotalRevenue decimal.Decimal
}

// Summary aggregates the reference month (per professional, per service)
// and the reference year (per calendar month), plus month-over-month
// revenue growth. Revenue always uses the price snapshotted on the
// appointment, never the live service price.
type Summary struct {
	ReferenceMonth time.Month
	ReferenceYear  int
	MonthCount     int
	MonthRevenue   decimal.Decimal
	ByProfessional []ProfessionalTotal
	ByMonth        []MonthTotal
	ByService      []ServiceTotal
	GrowthPercent  float64
}

// Summarize builds the Summary for the month of referenceDate from
// completed appointments. The input window must cover the reference year
// plus the month preceding it (for January growth).
func Summarize(appointments []entity.Appointment, ref RefData, referenceDate time.Time) *Summary {
	refYear, refMonth := referenceDate.Year(), referenceDate.Month()
	prevYear, prevMonth := refYear, refMonth-1
	if refMonth == time.January {
		prevYear, prevMonth = refYear-1, time.December
	}

	summary := &Summary{
		ReferenceMonth: refMonth,
		ReferenceYear:  refYear,
		MonthRevenue:   decimal.Zero,
	}

	byProfessional := make(map[uuid.UUID]*ProfessionalTotal)
	byService := make(map[uuid.UUID]*ServiceTotal)
	byMonth := make([]MonthTotal, 12)
	for i := range byMonth {
		byMonth[i] = MonthTotal{Month: time.Month(i + 1), TotalRevenue: decimal.Zero}
	}
	prevRevenue := decimal.Zero

	for _, appt := range appointments {
		if !appt.IsCompleted() {
			continue
		}
		year, month := appt.Date.Year(), appt.Date.Month()

		if year == prevYear && month == prevMonth {
			prevRevenue = prevRevenue.Add(appt.TotalPrice)
		}
		if year != refYear {
			continue
		}

		byMonth[month-1].Count++
		byMonth[month-1].TotalRevenue = byMonth[month-1].TotalRevenue.Add(appt.TotalPrice)

		if month != refMonth {
			continue
		}

		summary.MonthCount++
		summary.MonthRevenue = summary.MonthRevenue.Add(appt.TotalPrice)

		prof, ok := byProfessional[appt.ProfessionalID]
		if !ok {
			prof = &ProfessionalTotal{
				ProfessionalID: appt.ProfessionalID,
				Name:           ref.ProfessionalNames[appt.ProfessionalID],
				TotalRevenue:   decimal.Zero,
			}
			byProfessional[appt.ProfessionalID] = prof
		}
		prof.Count++
		prof.TotalRevenue = prof.TotalRevenue.Add(appt.TotalPrice)

		svc, ok := byService[appt.ServiceID]
		if !ok {
			svc = &ServiceTotal{
				ServiceID:    appt.ServiceID,
				Name:         ref.ServiceNames[appt.ServiceID],
				TotalRevenue: decimal.Zero,
			}
			byService[appt.ServiceID] = svc
		}
		svc.Count++
		svc.UnitPrice = appt.TotalPrice
		svc.TotalRevenue = svc.TotalRevenue.Add(appt.TotalPrice)
	}

	summary.ByMonth = byMonth
	summary.ByProfessional = sortProfessionals(byProfessional)
	summary.ByService = sortServices(byService)
	summary.GrowthPercent = growthPercent(prevRevenue, summary.MonthRevenue)

	return summary
}

// growthPercent computes month-over-month revenue change. A zero baseline
// reads as 100% when revenue appeared, 0% when both months are empty.
func growthPercent(prev, cur decimal.Decimal) float64 {
	if prev.IsZero() {
		if cur.IsPositive() {
			return 100
		}
		return 0
	}
	growth, _ := cur.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Float64()
	return growth
}

func sortProfessionals(m map[uuid.UUID]*ProfessionalTotal) []ProfessionalTotal {
	totals := make([]ProfessionalTotal, 0, len(m))
	for _, t := range m {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Name != totals[j].Name {
			return totals[i].Name < totals[j].Name
		}
		return totals[i].ProfessionalID.String() < totals[j].ProfessionalID.String()
	})
	return totals
}

func sortServices(m map[uuid.UUID]*ServiceTotal) []ServiceTotal {
	totals := make([]ServiceTotal, 0, len(m))
	for _, t := range m {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Name != totals[j].Name {
			return totals[i].Name < totals[j].Name
		}
		return totals[i].ServiceID.String() < totals[j].ServiceID.String()
	})
	return totals
}
