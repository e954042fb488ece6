package availability

import (
	"testing"

	"salon-booking-engine/internal/domain/entity"
)

func enabledDay(start, end string) entity.DayHours {
	return entity.DayHours{Enabled: true, Start: start, End: end}
}

func TestComputeSlots_Basic(t *testing.T) {
	// Monday 09:00-12:00, 30-minute service, one confirmed 09:30-10:00 booking.
	busy := []Interval{{Start: 9*60 + 30, End: 10 * 60}}

	slots, err := ComputeSlots(enabledDay("09:00", "12:00"), busy, 30, 0)
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}

	want := []Interval{
		{Start: 9 * 60, End: 9*60 + 30},
		{Start: 10 * 60, End: 10*60 + 30},
		{Start: 10*60 + 30, End: 11 * 60},
		{Start: 11 * 60, End: 11*60 + 30},
		{Start: 11*60 + 30, End: 12 * 60},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %+v", len(want), len(slots), slots)
	}
	for i, slot := range slots {
		if slot != want[i] {
			t.Fatalf("slot %d = %+v, want %+v", i, slot, want[i])
		}
		if slot.Start < 9*60 || slot.End > 12*60 {
			t.Fatalf("slot %+v escapes the working window", slot)
		}
	}
}

func TestComputeSlots_DisabledDay(t *testing.T) {
	slots, err := ComputeSlots(entity.DayHours{Enabled: false}, nil, 30, 0)
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("disabled day must yield no slots, got %+v", slots)
	}
}

func TestComputeSlots_InvalidDuration(t *testing.T) {
	for _, duration := range []int{0, -15} {
		if _, err := ComputeSlots(enabledDay("09:00", "12:00"), nil, duration, 0); err != ErrInvalidDuration {
			t.Fatalf("duration %d: expected ErrInvalidDuration, got %v", duration, err)
		}
	}
}

func TestComputeSlots_ShortFreeInterval(t *testing.T) {
	// 09:00-10:00 window with a 09:20-09:50 booking leaves 20- and
	// 10-minute gaps; neither fits a 30-minute service.
	busy := []Interval{{Start: 9*60 + 20, End: 9*60 + 50}}

	slots, err := ComputeSlots(enabledDay("09:00", "10:00"), busy, 30, 0)
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %+v", slots)
	}
}

func TestComputeSlots_WindowEndCutoff(t *testing.T) {
	// Working hours end at 12:00: a 45-minute service starting 11:45
	// would exceed the window, so the last candidate is 11:15.
	slots, err := ComputeSlots(enabledDay("09:00", "12:00"), nil, 45, 0)
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}
	last := slots[len(slots)-1]
	if last.End > 12*60 {
		t.Fatalf("last slot %+v exceeds window end", last)
	}
	if last.Start != 11*60+15 {
		t.Fatalf("last slot starts at %s, want 11:15", entity.FormatClock(last.Start))
	}
}

func TestComputeSlots_CustomStep(t *testing.T) {
	slots, err := ComputeSlots(enabledDay("09:00", "10:00"), nil, 30, 15)
	if err != nil {
		t.Fatalf("ComputeSlots: %v", err)
	}
	// 09:00, 09:15, 09:30 fit a 30-minute service before 10:00.
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d: %+v", len(slots), slots)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Start <= slots[i-1].Start {
			t.Fatalf("slots not ascending: %+v", slots)
		}
	}
}

func TestBusyFromAppointments_ExcludesCancelled(t *testing.T) {
	appointments := []entity.Appointment{
		{StartTime: "09:00", DurationMinutes: 30, Status: entity.AppointmentStatusConfirmed},
		{StartTime: "09:30", DurationMinutes: 30, Status: entity.AppointmentStatusCancelled},
		{StartTime: "10:00", DurationMinutes: 30, Status: entity.AppointmentStatusCompleted},
	}

	busy := BusyFromAppointments(appointments)
	if len(busy) != 2 {
		t.Fatalf("expected 2 busy intervals, got %d: %+v", len(busy), busy)
	}
	for _, b := range busy {
		if b.Start == 9*60+30 {
			t.Fatal("cancelled appointment must not occupy time")
		}
	}
}

func TestSubtract_AdjacentAndOverlapping(t *testing.T) {
	window := Interval{Start: 9 * 60, End: 12 * 60}
	busy := []Interval{
		{Start: 9 * 60, End: 9*60 + 30},       // flush with window start
		{Start: 9*60 + 15, End: 10 * 60},      // overlaps previous
		{Start: 11*60 + 30, End: 12*60 + 30},  // spills past window end
	}

	free := subtract(window, busy)
	want := []Interval{{Start: 10 * 60, End: 11*60 + 30}}
	if len(free) != 1 || free[0] != want[0] {
		t.Fatalf("subtract = %+v, want %+v", free, want)
	}
}
