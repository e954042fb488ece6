package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"salon-booking-engine/internal/domain/entity"
)

func completed(professionalID, serviceID uuid.UUID, date time.Time, price string) entity.Appointment {
	return entity.Appointment{
		ID:             uuid.New(),
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
		Status:         entity.AppointmentStatusCompleted,
		TotalPrice:     decimal.RequireFromString(price),
	}
}

func TestSummarize_Reconciliation(t *testing.T) {
	profA, profB := uuid.New(), uuid.New()
	svcCut, svcBeard := uuid.New(), uuid.New()
	ref := RefData{
		ProfessionalNames: map[uuid.UUID]string{profA: "Ana", profB: "Bruno"},
		ServiceNames:      map[uuid.UUID]string{svcCut: "Haircut", svcBeard: "Beard trim"},
	}
	refDate := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	appointments := []entity.Appointment{
		completed(profA, svcCut, time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC), "50.00"),
		completed(profA, svcBeard, time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC), "20.00"),
		completed(profB, svcCut, time.Date(2026, time.August, 12, 0, 0, 0, 0, time.UTC), "50.00"),
		// Other months of the reference year count for ByMonth only.
		completed(profB, svcCut, time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC), "50.00"),
		// Non-completed appointments never count.
		{ProfessionalID: profA, ServiceID: svcCut, Date: refDate, Status: entity.AppointmentStatusConfirmed, TotalPrice: decimal.RequireFromString("999.00")},
	}

	summary := Summarize(appointments, ref, refDate)

	wantMonth := decimal.RequireFromString("120.00")
	if !summary.MonthRevenue.Equal(wantMonth) {
		t.Fatalf("month revenue = %s, want %s", summary.MonthRevenue, wantMonth)
	}
	if summary.MonthCount != 3 {
		t.Fatalf("month count = %d, want 3", summary.MonthCount)
	}

	// sum(per-service) == sum(per-professional) == month total
	profSum, svcSum := decimal.Zero, decimal.Zero
	for _, p := range summary.ByProfessional {
		profSum = profSum.Add(p.TotalRevenue)
	}
	for _, s := range summary.ByService {
		svcSum = svcSum.Add(s.TotalRevenue)
	}
	if !profSum.Equal(wantMonth) || !svcSum.Equal(wantMonth) {
		t.Fatalf("reconciliation failed: professionals=%s services=%s month=%s", profSum, svcSum, wantMonth)
	}

	if len(summary.ByMonth) != 12 {
		t.Fatalf("expected 12 month buckets, got %d", len(summary.ByMonth))
	}
	july := summary.ByMonth[time.July-1]
	if july.Count != 1 || !july.TotalRevenue.Equal(decimal.RequireFromString("50.00")) {
		t.Fatalf("july bucket = %+v", july)
	}

	// Deterministic name ordering.
	if summary.ByProfessional[0].Name != "Ana" || summary.ByProfessional[1].Name != "Bruno" {
		t.Fatalf("professionals not sorted by name: %+v", summary.ByProfessional)
	}
	if summary.ByService[0].Name != "Beard trim" || summary.ByService[1].Name != "Haircut" {
		t.Fatalf("services not sorted by name: %+v", summary.ByService)
	}
}

func TestSummarize_SnapshotPriceNotLivePrice(t *testing.T) {
	prof, svc := uuid.New(), uuid.New()
	refDate := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	// The appointment was completed at the old price; whatever the live
	// service price says now is irrelevant to the report.
	appointments := []entity.Appointment{
		completed(prof, svc, refDate, "35.00"),
	}

	summary := Summarize(appointments, RefData{}, refDate)
	if !summary.MonthRevenue.Equal(decimal.RequireFromString("35.00")) {
		t.Fatalf("month revenue = %s, want snapshot 35.00", summary.MonthRevenue)
	}
	if !summary.ByService[0].UnitPrice.Equal(decimal.RequireFromString("35.00")) {
		t.Fatalf("unit price = %s, want 35.00", summary.ByService[0].UnitPrice)
	}
}

func TestGrowthPercent(t *testing.T) {
	cases := []struct {
		prev string
		cur  string
		want float64
	}{
		{"0", "0", 0},
		{"0", "100", 100},
		{"100", "50", -50},
		{"100", "150", 50},
		{"200", "200", 0},
	}

	for _, tt := range cases {
		prev := decimal.RequireFromString(tt.prev)
		cur := decimal.RequireFromString(tt.cur)
		if got := growthPercent(prev, cur); got != tt.want {
			t.Fatalf("growthPercent(%s, %s)=%v, want %v", tt.prev, tt.cur, got, tt.want)
		}
	}
}

func TestSummarize_JanuaryUsesPriorDecember(t *testing.T) {
	prof, svc := uuid.New(), uuid.New()
	refDate := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	appointments := []entity.Appointment{
		completed(prof, svc, time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC), "100.00"),
		completed(prof, svc, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), "150.00"),
	}

	summary := Summarize(appointments, RefData{}, refDate)
	if summary.GrowthPercent != 50 {
		t.Fatalf("growth = %v, want 50", summary.GrowthPercent)
	}
	// December of the prior year is baseline only, not a reference-year bucket.
	if summary.ByMonth[time.December-1].Count != 0 {
		t.Fatalf("prior-year december leaked into reference-year buckets: %+v", summary.ByMonth[time.December-1])
	}
}
