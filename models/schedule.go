package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is an ISO 8601 day-of-week number: Monday=1 .. Sunday=7.
// It is the canonical identifier for a day of the week, independent of
// any locale string shown in a UI.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Valid reports whether d is within the ISO range.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseWeekday parses the canonical lowercase English name ("monday" .. "sunday").
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := Monday; d <= Sunday; d++ {
		if weekdayNames[d] == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// WeekdayOf returns the ISO weekday of a calendar date.
func WeekdayOf(date CalendarDate) Weekday {
	wd := date.Time().Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// CalendarDate is a calendar day (year, month, day) with no time component.
// Its wire form is ISO "YYYY-MM-DD".
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCalendarDate parses a "YYYY-MM-DD" string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the date at midnight UTC.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay is a wall-clock time with minute granularity. Seconds are
// dropped at parse time, so two values compare equal whenever they fall
// within the same minute.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS"; a trailing seconds
// component is ignored.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	raw := strings.TrimSpace(s)
	if len(raw) > 5 && strings.Count(raw, ":") == 2 {
		raw = raw[:strings.LastIndex(raw, ":")]
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes returns minutes from midnight (e.g., 420 for 7:00 AM).
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// DayMode selects how a weekday's availability is expressed.
type DayMode string

const (
	// ModeRecurring repeats a fixed set of time slots every week.
	ModeRecurring DayMode = "recurring"
	// ModeSpecificDates lists explicit calendar dates, each with its own
	// slots, with no implied weekly repetition.
	ModeSpecificDates DayMode = "specific"
)

// DayConfig is the availability setup of one offered weekday.
// Exactly one of Slots or Dates is meaningful, depending on Mode.
type DayConfig struct {
	Mode          DayMode
	Slots         []TimeOfDay                  // ModeRecurring
	Dates         map[CalendarDate][]TimeOfDay // ModeSpecificDates
	ExcludedDates []CalendarDate               // dates on which this weekday is suppressed
	Languages     []string                     // metadata only, never used in matching
}

// Offered reports whether the config carries at least one usable slot.
// A weekday failing this check must not appear in a Schedule.
func (c DayConfig) Offered() bool {
	switch c.Mode {
	case ModeRecurring:
		return len(c.Slots) > 0
	case ModeSpecificDates:
		for _, slots := range c.Dates {
			if len(slots) > 0 {
				return true
			}
		}
	}
	return false
}

// Excludes reports whether date is on the exclusion list. Exclusions
// apply regardless of mode.
func (c DayConfig) Excludes(date CalendarDate) bool {
	for _, d := range c.ExcludedDates {
		if d == date {
			return true
		}
	}
	return false
}

// SlotsOn returns the slots applicable on the given date: the weekly
// slots in recurring mode, or the slots stored for that exact date in
// specific mode. A specific-dates weekday with no entry for the date
// returns nil; there is no fallback pattern.
func (c DayConfig) SlotsOn(date CalendarDate) []TimeOfDay {
	switch c.Mode {
	case ModeRecurring:
		return c.Slots
	case ModeSpecificDates:
		return c.Dates[date]
	}
	return nil
}

// Schedule maps each offered weekday to its availability setup. A
// weekday absent from the map is never available.
type Schedule map[Weekday]DayConfig
