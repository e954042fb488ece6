// Package availability computes bookable time windows for a professional
// on a given date. It is pure: callers fetch the calendar and the
// existing appointments, this package only does the interval math.
//
// The output is advisory. A slot shown here can be taken by the time the
// client books it; the ledger's atomic check at commit time is the sole
// authority.
package availability

import (
	"errors"
	"sort"

	"salon-booking-engine/internal/domain/entity"
)

var ErrInvalidDuration = errors.New("service duration must be positive")

// Interval is a half-open window [Start, End) in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals share an instant.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && other.Start < i.End
}

// ComputeSlots returns the bookable windows of exactly durationMin
// minutes within the day's working window, ascending by start time.
//
// The busy intervals are subtracted from the working window first; within
// each remaining free interval, candidates start at the interval's start
// and step by stepMin until the window no longer fits. stepMin <= 0
// defaults to durationMin.
func ComputeSlots(day entity.DayHours, busy []Interval, durationMin, stepMin int) ([]Interval, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if stepMin <= 0 {
		stepMin = durationMin
	}
	if !day.Enabled {
		return nil, nil
	}

	windowStart, err := entity.ParseClock(day.Start)
	if err != nil {
		return nil, err
	}
	windowEnd, err := entity.ParseClock(day.End)
	if err != nil {
		return nil, err
	}

	var slots []Interval
	for _, free := range subtract(Interval{Start: windowStart, End: windowEnd}, busy) {
		for start := free.Start; start+durationMin <= free.End; start += stepMin {
			slots = append(slots, Interval{Start: start, End: start + durationMin})
		}
	}
	return slots, nil
}

// BusyFromAppointments builds the subtraction set from the day's
// appointments. Cancelled appointments do not occupy time.
func BusyFromAppointments(appointments []entity.Appointment) []Interval {
	var busy []Interval
	for _, appt := range appointments {
		if !appt.OccupiesSlot() {
			continue
		}
		start, err := entity.ParseClock(appt.StartTime)
		if err != nil {
			continue
		}
		busy = append(busy, Interval{Start: start, End: start + appt.DurationMinutes})
	}
	return busy
}

// subtract removes the busy intervals from window, returning the free
// intervals in ascending order.
func subtract(window Interval, busy []Interval) []Interval {
	if window.Start >= window.End {
		return nil
	}

	sorted := make([]Interval, 0, len(busy))
	for _, b := range busy {
		if b.Overlaps(window) {
			sorted = append(sorted, b)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var free []Interval
	cursor := window.Start
	for _, b := range sorted {
		if b.Start > cursor {
			free = append(free, Interval{Start: cursor, End: min(b.Start, window.End)})
		}
		if b.End > cursor {
			cursor = b.End
		}
		if cursor >= window.End {
			return free
		}
	}
	if cursor < window.End {
		free = append(free, Interval{Start: cursor, End: window.End})
	}
	return free
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
