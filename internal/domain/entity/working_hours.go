package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidClock        = errors.New("invalid time format, use HH:MM")
	ErrInvalidWorkingHours = errors.New("working hours start must be before end")
)

// DayHours is the working window for a single weekday.
// Start and End use "HH:MM" 24h format; both half-open: [Start, End).
type DayHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// WorkingHours is the recurring weekly calendar of a professional, keyed by
// weekday. This is the domain representation; the ordered wire list exists
// only at the persistence/transport boundary (ToWire / WorkingHoursFromWire).
type WorkingHours map[time.Weekday]DayHours

// wireWeekdays fixes the encode order: Monday first, Sunday last.
var wireWeekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

var weekdaysByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// WorkingHoursEntry is the wire/storage shape for one weekday.
type WorkingHoursEntry struct {
	Day     string `json:"day"`
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// NewWorkingHours returns a calendar with every weekday disabled.
func NewWorkingHours() WorkingHours {
	wh := make(WorkingHours, len(wireWeekdays))
	for _, day := range wireWeekdays {
		wh[day] = DayHours{}
	}
	return wh
}

// Get returns the window for a weekday. A day never set is disabled.
func (wh WorkingHours) Get(day time.Weekday) DayHours {
	return wh[day]
}

// Set stores the window for a weekday. An enabled window must have valid
// HH:MM times with Start strictly before End.
func (wh WorkingHours) Set(day time.Weekday, hours DayHours) error {
	if hours.Enabled {
		start, err := ParseClock(hours.Start)
		if err != nil {
			return err
		}
		end, err := ParseClock(hours.End)
		if err != nil {
			return err
		}
		if start >= end {
			return ErrInvalidWorkingHours
		}
	}
	wh[day] = hours
	return nil
}

// ToWire encodes the calendar as an ordered list, always emitting all 7
// days regardless of which were explicitly set.
func (wh WorkingHours) ToWire() []WorkingHoursEntry {
	entries := make([]WorkingHoursEntry, 0, len(wireWeekdays))
	for _, day := range wireWeekdays {
		hours := wh[day]
		entries = append(entries, WorkingHoursEntry{
			Day:     weekdayNames[day],
			Enabled: hours.Enabled,
			Start:   hours.Start,
			End:     hours.End,
		})
	}
	return entries
}

// WorkingHoursFromWire decodes the wire list. Days absent from the list
// default to disabled, unknown day keys are skipped, and duplicate keys
// resolve last-write-wins. Exact inverse of ToWire for any calendar built
// via Set.
func WorkingHoursFromWire(entries []WorkingHoursEntry) WorkingHours {
	wh := NewWorkingHours()
	for _, entry := range entries {
		day, ok := weekdaysByName[strings.ToLower(entry.Day)]
		if !ok {
			continue
		}
		wh[day] = DayHours{
			Enabled: entry.Enabled,
			Start:   entry.Start,
			End:     entry.End,
		}
	}
	return wh
}

// Value implements driver.Valuer, storing the wire list as JSONB.
func (wh WorkingHours) Value() (driver.Value, error) {
	return json.Marshal(wh.ToWire())
}

// Scan implements sql.Scanner, decoding the stored wire list.
func (wh *WorkingHours) Scan(value interface{}) error {
	if value == nil {
		*wh = NewWorkingHours()
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal working hours value: %v", value)
	}

	var entries []WorkingHoursEntry
	if err := json.Unmarshal(bytes, &entries); err != nil {
		return err
	}
	*wh = WorkingHoursFromWire(entries)
	return nil
}

// ParseClock parses "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidClock
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ClockAdd returns start shifted forward by the given number of minutes.
func ClockAdd(start string, minutes int) (string, error) {
	m, err := ParseClock(start)
	if err != nil {
		return "", err
	}
	return FormatClock(m + minutes), nil
}
