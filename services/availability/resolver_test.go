package availability

import (
	"testing"
	"time"

	"reservas/models"
	"reservas/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func date(t *testing.T, s string) models.CalendarDate {
	t.Helper()
	d, err := models.ParseCalendarDate(s)
	require.NoError(t, err)
	return d
}

func recurringService(id string, day models.Weekday, slots ...models.TimeOfDay) models.AgencyService {
	return models.AgencyService{
		ID:            id,
		AgencyID:      "agency-" + id,
		AgencyName:    "Agency " + id,
		Active:        true,
		PriorityOrder: models.DefaultPriorityOrder,
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Schedule: models.Schedule{
			day: {Mode: models.ModeRecurring, Slots: slots},
		},
	}
}

func TestResolveRecurringMatch(t *testing.T) {
	r := NewResolver(zap.NewNop())
	services := []models.AgencyService{
		recurringService("a", models.Monday, models.TimeOfDay{Hour: 10}),
	}

	// 2024-01-08 is a Monday.
	matches, err := r.Resolve(models.AvailabilityQuery{Date: "2024-01-08", Time: "10:00:00"}, services)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "a", matches[0].ID)

	// One minute off is not a match.
	matches, err = r.Resolve(models.AvailabilityQuery{Date: "2024-01-08", Time: "10:01"}, services)
	require.NoError(t, err)
	assert.Empty(t, matches)

	// Wrong weekday is not a match.
	matches, err = r.Resolve(models.AvailabilityQuery{Date: "2024-01-09", Time: "10:00"}, services)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolveExclusionOverridesRecurring(t *testing.T) {
	r := NewResolver(zap.NewNop())

	svc := recurringService("a", models.Monday, models.TimeOfDay{Hour: 10})
	cfg := svc.Schedule[models.Monday]
	cfg.ExcludedDates = []models.CalendarDate{date(t, "2024-01-08")}
	svc.Schedule[models.Monday] = cfg

	matches, err := r.Resolve(models.AvailabilityQuery{Date: "2024-01-08", Time: "10:00"}, []models.AgencyService{svc})
	require.NoError(t, err)
	assert.Empty(t, matches)

	// The following Monday is unaffected.
	matches, err = r.Resolve(models.AvailabilityQuery{Date: "2024-01-15", Time: "10:00"}, []models.AgencyService{svc})
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestResolveExclusionOverridesSpecificDates(t *testing.T) {
	r := NewResolver(zap.NewNop())

	mar1 := date(t, "2024-03-01") // a Friday
	svc := models.AgencyService{
		ID:     "a",
		Active: true,
		Schedule: models.Schedule{
			models.Friday: {
				Mode:          models.ModeSpecificDates,
				Dates:         map[models.CalendarDate][]models.TimeOfDay{mar1: {{Hour: 10}}},
				ExcludedDates: []models.CalendarDate{mar1},
			},
		},
	}

	matches, err := r.Resolve(models.AvailabilityQuery{Date: "2024-03-01", Time: "10:00"}, []models.AgencyService{svc})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolveSpecificDatesNoWeeklyFallback(t *testing.T) {
	r := NewResolver(zap.NewNop())

	mar1 := date(t, "2024-03-01")
	svc := models.AgencyService{
		ID:     "a",
		Active: true,
		Schedule: models.Schedule{
			models.Friday: {
				Mode:  models.ModeSpecificDates,
				Dates: map[models.CalendarDate][]models.TimeOfDay{mar1: {{Hour: 10}}},
			},
		},
	}

	matches, err := r.Resolve(models.AvailabilityQuery{Date: "2024-03-01", Time: "10:00"}, []models.AgencyService{svc})
	require.NoError(t, err)
	require.Len(t, matches, 1)

	// 2024-03-08 is also a Friday, but it has no entry of its own.
	matches, err = r.Resolve(models.AvailabilityQuery{Date: "2024-03-08", Time: "10:00"}, []models.AgencyService{svc})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestResolveRanking(t *testing.T) {
	r := NewResolver(zap.NewNop())

	first := recurringService("first", models.Monday, models.TimeOfDay{Hour: 10})
	first.PriorityOrder = 1
	second := recurringService("second", models.Monday, models.TimeOfDay{Hour: 10})
	second.PriorityOrder = 2
	older := recurringService("older", models.Monday, models.TimeOfDay{Hour: 10})
	older.PriorityOrder = 2
	older.CreatedAt = second.CreatedAt.Add(-24 * time.Hour)

	// Input order must not matter.
	services := []models.AgencyService{second, older, first}
	matches, err := r.Resolve(models.AvailabilityQuery{Date: "2024-01-08", Time: "10:00"}, services)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "first", matches[0].ID)
	assert.Equal(t, "older", matches[1].ID)
	assert.Equal(t, "second", matches[2].ID)
}

func TestResolveCorruptScheduleIsolated(t *testing.T) {
	r := NewResolver(zap.NewNop())

	corrupt := models.AgencyService{ID: "corrupt", Active: true, Schedule: nil}
	healthy := recurringService("healthy", models.Monday, models.TimeOfDay{Hour: 10})

	matches, err := r.Resolve(models.AvailabilityQuery{Date: "2024-01-08", Time: "10:00"},
		[]models.AgencyService{corrupt, healthy})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "healthy", matches[0].ID)
}

func TestResolveInvalidQuery(t *testing.T) {
	r := NewResolver(zap.NewNop())

	_, err := r.Resolve(models.AvailabilityQuery{Date: "someday", Time: "10:00"}, nil)
	require.Error(t, err)
	assert.IsType(t, &utils.InvalidQueryError{}, err)

	_, err = r.Resolve(models.AvailabilityQuery{Date: "2024-01-08", Time: "late"}, nil)
	require.Error(t, err)
	assert.IsType(t, &utils.InvalidQueryError{}, err)
}

func TestResolveEmptyResultIsNormal(t *testing.T) {
	r := NewResolver(zap.NewNop())

	matches, err := r.Resolve(models.AvailabilityQuery{Date: "2024-01-08", Time: "10:00"}, nil)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
