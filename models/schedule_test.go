package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOfISO(t *testing.T) {
	// 2024-01-01 is a Monday under ISO numbering.
	cases := []struct {
		date string
		want Weekday
	}{
		{"2024-01-01", Monday},
		{"2024-01-02", Tuesday},
		{"2024-01-06", Saturday},
		{"2024-01-07", Sunday},
		{"2024-03-01", Friday},
		{"2024-02-29", Thursday}, // leap day
	}
	for _, tc := range cases {
		date, err := ParseCalendarDate(tc.date)
		require.NoError(t, err)
		assert.Equal(t, tc.want, WeekdayOf(date), "weekday of %s", tc.date)
	}
}

func TestWeekdayRoundTrip(t *testing.T) {
	for d := Monday; d <= Sunday; d++ {
		parsed, err := ParseWeekday(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	_, err := ParseWeekday("lundi")
	assert.Error(t, err)
}

func TestParseTimeOfDayDropsSeconds(t *testing.T) {
	withSeconds, err := ParseTimeOfDay("10:00:45")
	require.NoError(t, err)
	plain, err := ParseTimeOfDay("10:00")
	require.NoError(t, err)

	assert.Equal(t, plain, withSeconds)
	assert.Equal(t, "10:00", withSeconds.String())
	assert.Equal(t, 600, withSeconds.Minutes())
}

func TestParseTimeOfDayRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "25:00", "10:69", "noon", "10.30"} {
		_, err := ParseTimeOfDay(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestParseCalendarDate(t *testing.T) {
	date, err := ParseCalendarDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", date.String())

	for _, raw := range []string{"", "2024-13-01", "01/03/2024", "2024-02-30"} {
		_, err := ParseCalendarDate(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestDayConfigOffered(t *testing.T) {
	assert.False(t, DayConfig{Mode: ModeRecurring}.Offered())
	assert.True(t, DayConfig{Mode: ModeRecurring, Slots: []TimeOfDay{{Hour: 10}}}.Offered())

	assert.False(t, DayConfig{Mode: ModeSpecificDates}.Offered())
	assert.False(t, DayConfig{
		Mode:  ModeSpecificDates,
		Dates: map[CalendarDate][]TimeOfDay{{Year: 2024, Month: 3, Day: 1}: {}},
	}.Offered())
	assert.True(t, DayConfig{
		Mode:  ModeSpecificDates,
		Dates: map[CalendarDate][]TimeOfDay{{Year: 2024, Month: 3, Day: 1}: {{Hour: 10}}},
	}.Offered())
}

func TestDayConfigSlotsOnNoFallback(t *testing.T) {
	date := CalendarDate{Year: 2024, Month: 3, Day: 1}
	other := CalendarDate{Year: 2024, Month: 3, Day: 8}
	cfg := DayConfig{
		Mode:  ModeSpecificDates,
		Dates: map[CalendarDate][]TimeOfDay{date: {{Hour: 10}}},
	}

	assert.NotEmpty(t, cfg.SlotsOn(date))
	assert.Empty(t, cfg.SlotsOn(other))
}
