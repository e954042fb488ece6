package entity

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from  AppointmentStatus
		to    AppointmentStatus
		valid bool
	}{
		{AppointmentStatusScheduled, AppointmentStatusConfirmed, true},
		{AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{AppointmentStatusScheduled, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusScheduled, false},
		{AppointmentStatusCompleted, AppointmentStatusConfirmed, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
	}

	for _, tt := range cases {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("CanTransition(%q, %q)=%v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if AppointmentStatusScheduled.Terminal() || AppointmentStatusConfirmed.Terminal() {
		t.Fatal("scheduled/confirmed must not be terminal")
	}
	if !AppointmentStatusCompleted.Terminal() || !AppointmentStatusCancelled.Terminal() {
		t.Fatal("completed/cancelled must be terminal")
	}
}

func TestAppointmentEndTime(t *testing.T) {
	appt := Appointment{StartTime: "09:30", DurationMinutes: 45}
	end, err := appt.EndTime()
	if err != nil {
		t.Fatalf("EndTime: %v", err)
	}
	if end != "10:15" {
		t.Fatalf("EndTime=%s, want 10:15", end)
	}
}

func TestOccupiesSlot(t *testing.T) {
	for _, status := range []AppointmentStatus{AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusCompleted} {
		appt := Appointment{Status: status}
		if !appt.OccupiesSlot() {
			t.Fatalf("status %q should occupy its slot", status)
		}
	}
	cancelled := Appointment{Status: AppointmentStatusCancelled}
	if cancelled.OccupiesSlot() {
		t.Fatal("cancelled appointment must not occupy its slot")
	}
}
