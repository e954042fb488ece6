package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"salon-booking-engine/internal/delivery/dto"
	"salon-booking-engine/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// newAvailabilityFixture narrows the ledger fixture's professional to a
// Tuesday 09:00 to 12:00 window and wires an availability usecase over
// the same fake repositories, so bookings made through the ledger are
// visible to slot computation.
func newAvailabilityFixture(t *testing.T) (*ledgerFixture, AvailabilityUsecase) {
	t.Helper()

	f := newLedgerFixture(t, false)

	log := logrus.New()
	log.SetOutput(io.Discard)

	hours := entity.NewWorkingHours()
	if err := hours.Set(time.Tuesday, entity.DayHours{Enabled: true, Start: "09:00", End: "12:00"}); err != nil {
		t.Fatalf("set working hours: %v", err)
	}
	active := true
	professionals := &fakeProfessionalRepo{professionals: map[uuid.UUID]*entity.Professional{
		f.professionalID: {
			ID:           f.professionalID,
			BusinessID:   f.businessID,
			Name:         "Marco",
			WorkingHours: hours,
			IsActive:     &active,
		},
	}}
	services := &fakeServiceRepo{services: map[uuid.UUID]*entity.Service{
		f.serviceID: {
			ID:              f.serviceID,
			BusinessID:      f.businessID,
			Name:            "Haircut",
			DurationMinutes: 30,
			Price:           decimal.RequireFromString("50.00"),
			IsActive:        &active,
		},
	}}

	uc := NewAvailabilityUsecase(nil, log, professionals, services, f.appointments)
	return f, uc
}

func TestComputeAvailableSlots_ExcludesBookedIntervals(t *testing.T) {
	f, uc := newAvailabilityFixture(t)

	// Book [10:00, 10:30) through the ledger first.
	if _, err := f.usecase.CreateAppointment(context.Background(), f.businessID, f.createRequest("2026-09-01", "10:00")); err != nil {
		t.Fatalf("booking: %v", err)
	}

	resp, err := uc.ComputeAvailableSlots(context.Background(), f.businessID, &dto.AvailableSlotsRequest{
		ProfessionalID: f.professionalID,
		ServiceID:      f.serviceID,
		Date:           "2026-09-01",
	})
	if err != nil {
		t.Fatalf("ComputeAvailableSlots() error = %v", err)
	}

	want := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}
	if len(resp.Slots) != len(want) {
		t.Fatalf("got %d slots, want %d: %+v", len(resp.Slots), len(want), resp.Slots)
	}
	for i, start := range want {
		if resp.Slots[i].StartTime != start {
			t.Errorf("slot[%d].StartTime = %s, want %s", i, resp.Slots[i].StartTime, start)
		}
	}
	if resp.Total != len(want) {
		t.Errorf("Total = %d, want %d", resp.Total, len(want))
	}
}

func TestComputeAvailableSlots_DisabledDayIsEmpty(t *testing.T) {
	f, uc := newAvailabilityFixture(t)

	resp, err := uc.ComputeAvailableSlots(context.Background(), f.businessID, &dto.AvailableSlotsRequest{
		ProfessionalID: f.professionalID,
		ServiceID:      f.serviceID,
		Date:           "2026-09-06", // a Sunday
	})
	if err != nil {
		t.Fatalf("ComputeAvailableSlots() error = %v", err)
	}
	if resp.Total != 0 || len(resp.Slots) != 0 {
		t.Fatalf("got %d slots on a disabled day, want none", resp.Total)
	}
}

func TestComputeAvailableSlots_UnknownProfessional(t *testing.T) {
	f, uc := newAvailabilityFixture(t)

	_, err := uc.ComputeAvailableSlots(context.Background(), f.businessID, &dto.AvailableSlotsRequest{
		ProfessionalID: uuid.New(),
		ServiceID:      f.serviceID,
		Date:           "2026-09-01",
	})
	if !errors.Is(err, ErrProfessionalNotFound) {
		t.Fatalf("ComputeAvailableSlots() error = %v, want ErrProfessionalNotFound", err)
	}
}
