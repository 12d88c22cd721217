package models

import (
	"fmt"
	"sort"
)

// ScheduleDoc is the stored form of the slot/mode half of a Schedule:
// weekday name → day hours. It is one of the two independent blobs kept
// per agency, the other being ExcludedDatesDoc.
type ScheduleDoc map[string]DayHoursDoc

// DayHoursDoc is the stored form of one weekday's hours.
type DayHoursDoc struct {
	Mode      string              `bson:"mode" json:"mode"`
	Slots     []string            `bson:"slots,omitempty" json:"slots,omitempty"`
	Dates     map[string][]string `bson:"dates,omitempty" json:"dates,omitempty"`
	Languages []string            `bson:"languages,omitempty" json:"languages,omitempty"`
}

// ExcludedDatesDoc is the stored form of the exclusion half of a
// Schedule: weekday name → excluded dates.
type ExcludedDatesDoc map[string][]string

// Encode splits a Schedule into its two stored blobs. Slot and date
// lists are emitted in sorted order so the output is deterministic.
func (s Schedule) Encode() (ScheduleDoc, ExcludedDatesDoc) {
	if len(s) == 0 {
		return ScheduleDoc{}, ExcludedDatesDoc{}
	}
	hours := make(ScheduleDoc, len(s))
	excluded := make(ExcludedDatesDoc)
	for day, cfg := range s {
		doc := DayHoursDoc{Mode: string(cfg.Mode)}
		switch cfg.Mode {
		case ModeRecurring:
			doc.Slots = encodeSlots(cfg.Slots)
		case ModeSpecificDates:
			doc.Dates = make(map[string][]string, len(cfg.Dates))
			for date, slots := range cfg.Dates {
				doc.Dates[date.String()] = encodeSlots(slots)
			}
		}
		if len(cfg.Languages) > 0 {
			doc.Languages = append([]string(nil), cfg.Languages...)
		}
		hours[day.String()] = doc

		if len(cfg.ExcludedDates) > 0 {
			dates := make([]string, 0, len(cfg.ExcludedDates))
			for _, d := range cfg.ExcludedDates {
				dates = append(dates, d.String())
			}
			sort.Strings(dates)
			excluded[day.String()] = dates
		}
	}
	return hours, excluded
}

// DecodeSchedule rebuilds a Schedule from its two stored blobs. Any
// malformed weekday name, mode, slot, or date makes the whole blob
// invalid; callers treat the error as a configuration fault of the
// owning record, not of the query being served.
func DecodeSchedule(hours ScheduleDoc, excluded ExcludedDatesDoc) (Schedule, error) {
	schedule := make(Schedule, len(hours))
	for name, doc := range hours {
		day, err := ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("schedule blob: %w", err)
		}
		cfg := DayConfig{Mode: DayMode(doc.Mode), Languages: doc.Languages}
		switch cfg.Mode {
		case ModeRecurring:
			cfg.Slots, err = decodeSlots(doc.Slots)
			if err != nil {
				return nil, fmt.Errorf("schedule blob, %s: %w", name, err)
			}
		case ModeSpecificDates:
			cfg.Dates = make(map[CalendarDate][]TimeOfDay, len(doc.Dates))
			for rawDate, rawSlots := range doc.Dates {
				date, err := ParseCalendarDate(rawDate)
				if err != nil {
					return nil, fmt.Errorf("schedule blob, %s: %w", name, err)
				}
				slots, err := decodeSlots(rawSlots)
				if err != nil {
					return nil, fmt.Errorf("schedule blob, %s %s: %w", name, rawDate, err)
				}
				cfg.Dates[date] = slots
			}
		default:
			return nil, fmt.Errorf("schedule blob, %s: unknown mode %q", name, doc.Mode)
		}
		schedule[day] = cfg
	}

	for name, rawDates := range excluded {
		day, err := ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("excluded dates blob: %w", err)
		}
		cfg, ok := schedule[day]
		if !ok {
			// Exclusions for a weekday that offers nothing carry no
			// meaning; drop them rather than fail the record.
			continue
		}
		for _, rawDate := range rawDates {
			date, err := ParseCalendarDate(rawDate)
			if err != nil {
				return nil, fmt.Errorf("excluded dates blob, %s: %w", name, err)
			}
			cfg.ExcludedDates = append(cfg.ExcludedDates, date)
		}
		schedule[day] = cfg
	}
	return schedule, nil
}

func encodeSlots(slots []TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	sort.Strings(out)
	return out
}

func decodeSlots(raw []string) ([]TimeOfDay, error) {
	slots := make([]TimeOfDay, 0, len(raw))
	for _, r := range raw {
		s, err := ParseTimeOfDay(r)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}
