package entity

import (
	"reflect"
	"testing"
	"time"
)

func TestWorkingHoursSet_Validation(t *testing.T) {
	cases := []struct {
		name  string
		hours DayHours
		err   error
	}{
		{"enabled valid", DayHours{Enabled: true, Start: "09:00", End: "17:00"}, nil},
		{"enabled start equals end", DayHours{Enabled: true, Start: "09:00", End: "09:00"}, ErrInvalidWorkingHours},
		{"enabled start after end", DayHours{Enabled: true, Start: "17:00", End: "09:00"}, ErrInvalidWorkingHours},
		{"enabled bad start", DayHours{Enabled: true, Start: "9am", End: "17:00"}, ErrInvalidClock},
		{"enabled bad end", DayHours{Enabled: true, Start: "09:00", End: "25:00"}, ErrInvalidClock},
		{"disabled ignores times", DayHours{Enabled: false, Start: "bogus", End: ""}, nil},
	}

	for _, tt := range cases {
		wh := NewWorkingHours()
		if err := wh.Set(time.Monday, tt.hours); err != tt.err {
			t.Fatalf("%s: Set returned %v, want %v", tt.name, err, tt.err)
		}
	}
}

func TestWorkingHoursWire_RoundTrip(t *testing.T) {
	wh := NewWorkingHours()
	if err := wh.Set(time.Monday, DayHours{Enabled: true, Start: "09:00", End: "12:00"}); err != nil {
		t.Fatalf("Set monday: %v", err)
	}
	if err := wh.Set(time.Saturday, DayHours{Enabled: true, Start: "10:00", End: "14:00"}); err != nil {
		t.Fatalf("Set saturday: %v", err)
	}

	wire := wh.ToWire()
	if len(wire) != 7 {
		t.Fatalf("expected 7 wire entries, got %d", len(wire))
	}
	if wire[0].Day != "monday" || wire[6].Day != "sunday" {
		t.Fatalf("wire order wrong: first=%s last=%s", wire[0].Day, wire[6].Day)
	}

	decoded := WorkingHoursFromWire(wire)
	if !reflect.DeepEqual(wh, decoded) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, wh)
	}
}

func TestWorkingHoursFromWire_Tolerance(t *testing.T) {
	entries := []WorkingHoursEntry{
		{Day: "monday", Enabled: true, Start: "09:00", End: "12:00"},
		{Day: "monday", Enabled: true, Start: "10:00", End: "13:00"}, // duplicate: last write wins
		{Day: "caturday", Enabled: true, Start: "00:00", End: "23:59"}, // unknown key: skipped
	}

	wh := WorkingHoursFromWire(entries)

	monday := wh.Get(time.Monday)
	if monday.Start != "10:00" || monday.End != "13:00" {
		t.Fatalf("duplicate day should resolve last-write-wins, got %+v", monday)
	}

	// Days absent from the wire list default to disabled.
	for _, day := range []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		if wh.Get(day).Enabled {
			t.Fatalf("%s should default to disabled", day)
		}
	}
}

func TestClockHelpers(t *testing.T) {
	minutes, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	if minutes != 570 {
		t.Fatalf("ParseClock(09:30)=%d, want 570", minutes)
	}
	if got := FormatClock(570); got != "09:30" {
		t.Fatalf("FormatClock(570)=%s, want 09:30", got)
	}

	end, err := ClockAdd("11:45", 45)
	if err != nil {
		t.Fatalf("ClockAdd: %v", err)
	}
	if end != "12:30" {
		t.Fatalf("ClockAdd(11:45, 45)=%s, want 12:30", end)
	}

	if _, err := ParseClock("not-a-time"); err != ErrInvalidClock {
		t.Fatalf("expected ErrInvalidClock, got %v", err)
	}
}
