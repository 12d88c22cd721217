package schedule

import (
	"fmt"
	"strings"

	"reservas/models"
)

// DefaultValidator is the concrete Validator implementation.
type DefaultValidator struct{}

// NewValidator creates a schedule validator.
func NewValidator() Validator {
	return &DefaultValidator{}
}

// Validate checks a full service submission and returns the normalized
// schedule. A deactivating submission (Active=false) carries no
// schedule or price data and passes through untouched; the stored
// record is preserved for later reactivation.
func (v *DefaultValidator) Validate(sub models.ServiceSubmission) (models.Schedule, error) {
	if !sub.Active {
		return nil, nil
	}

	sched := models.Schedule{}
	for name, day := range sub.Days {
		if !day.Enabled {
			continue
		}
		weekday, err := models.ParseWeekday(name)
		if err != nil {
			return nil, NewValidationError(CodeInvalidWeekday, fmt.Sprintf("unknown weekday %q", name))
		}
		cfg, err := buildDayConfig(weekday, day)
		if err != nil {
			return nil, err
		}
		if !cfg.Offered() {
			// A day with no usable slot set is simply not offered.
			continue
		}
		sched[weekday] = cfg
	}

	if len(sched) == 0 {
		return nil, NewValidationError(CodeEmptySchedule, "at least one weekday must carry at least one time slot")
	}

	if sub.PriceAdult <= 0 {
		return nil, NewValidationError(CodeInvalidPrice, "adult price must be greater than 0")
	}
	if sub.PriceChild < 0 {
		return nil, NewValidationError(CodeInvalidPrice, "child price cannot be negative")
	}
	if sub.PriceChildMinor < 0 {
		return nil, NewValidationError(CodeInvalidPrice, "minor child price cannot be negative")
	}

	return sched, nil
}

func buildDayConfig(weekday models.Weekday, day models.DaySubmission) (models.DayConfig, error) {
	cfg := models.DayConfig{}

	switch day.Mode {
	case string(models.ModeSpecificDates):
		cfg.Mode = models.ModeSpecificDates
		cfg.Dates = map[models.CalendarDate][]models.TimeOfDay{}
		for rawDate, rawSlots := range day.Dates {
			if strings.TrimSpace(rawDate) == "" {
				continue
			}
			date, err := models.ParseCalendarDate(rawDate)
			if err != nil {
				return cfg, NewValidationError(CodeInvalidDate,
					fmt.Sprintf("invalid date %q for %s", rawDate, weekday))
			}
			slots, err := parseSlots(weekday, rawSlots)
			if err != nil {
				return cfg, err
			}
			if len(slots) > 0 {
				cfg.Dates[date] = slots
			}
		}
	case string(models.ModeRecurring), "":
		// Recurring is the default when the form sends no mode.
		cfg.Mode = models.ModeRecurring
		slots, err := parseSlots(weekday, day.Slots)
		if err != nil {
			return cfg, err
		}
		cfg.Slots = slots
	default:
		return cfg, NewValidationError(CodeInvalidMode,
			fmt.Sprintf("unknown availability mode %q for %s", day.Mode, weekday))
	}

	// Unparsable excluded dates are dropped silently rather than
	// failing the whole submission.
	seen := map[models.CalendarDate]bool{}
	for _, raw := range day.ExcludedDates {
		date, err := models.ParseCalendarDate(raw)
		if err != nil || seen[date] {
			continue
		}
		seen[date] = true
		cfg.ExcludedDates = append(cfg.ExcludedDates, date)
	}

	for _, lang := range day.Languages {
		if l := strings.TrimSpace(lang); l != "" {
			cfg.Languages = append(cfg.Languages, l)
		}
	}

	return cfg, nil
}

// parseSlots parses submitted time slots, skipping blank entries and
// deduplicating at minute granularity. A malformed non-blank entry
// fails the submission.
func parseSlots(weekday models.Weekday, raw []string) ([]models.TimeOfDay, error) {
	var slots []models.TimeOfDay
	seen := map[models.TimeOfDay]bool{}
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		slot, err := models.ParseTimeOfDay(r)
		if err != nil {
			return nil, NewValidationError(CodeInvalidTime,
				fmt.Sprintf("invalid time slot %q for %s", r, weekday))
		}
		if seen[slot] {
			continue
		}
		seen[slot] = true
		slots = append(slots, slot)
	}
	return slots, nil
}
