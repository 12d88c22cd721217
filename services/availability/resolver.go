package availability

import (
	"sort"

	"reservas/models"
	"reservas/utils"

	"go.uber.org/zap"
)

// DefaultResolver is the concrete Resolver implementation.
type DefaultResolver struct {
	Logger *zap.Logger
}

// NewResolver creates an availability resolver.
func NewResolver(logger *zap.Logger) Resolver {
	return &DefaultResolver{Logger: logger}
}

// Resolve returns the services bookable at the queried date and time,
// ranked by (priority order, creation time). An empty result is a
// normal outcome, not an error.
func (r *DefaultResolver) Resolve(query models.AvailabilityQuery, services []models.AgencyService) ([]models.AgencyService, error) {
	date, err := models.ParseCalendarDate(query.Date)
	if err != nil {
		return nil, utils.NewInvalidQueryError("date", query.Date)
	}
	at, err := models.ParseTimeOfDay(query.Time)
	if err != nil {
		return nil, utils.NewInvalidQueryError("time", query.Time)
	}
	weekday := models.WeekdayOf(date)

	var matches []models.AgencyService
	for _, svc := range services {
		// A nil schedule means the stored blobs failed to decode; the
		// service offers nothing but must not break the rest of the scan.
		if svc.Schedule == nil {
			continue
		}
		cfg, ok := svc.Schedule[weekday]
		if !ok {
			continue
		}
		// Exclusion overrides both modes.
		if cfg.Excludes(date) {
			continue
		}
		if !slotMatches(cfg.SlotsOn(date), at) {
			continue
		}
		matches = append(matches, svc)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].PriorityOrder != matches[j].PriorityOrder {
			return matches[i].PriorityOrder < matches[j].PriorityOrder
		}
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})

	if r.Logger != nil {
		r.Logger.Debug("availability resolved",
			zap.String("date", date.String()),
			zap.String("time", at.String()),
			zap.String("weekday", weekday.String()),
			zap.Int("scanned", len(services)),
			zap.Int("matched", len(matches)),
		)
	}
	return matches, nil
}

// slotMatches reports whether the queried time equals any slot at
// minute granularity. Seconds were already dropped at parse time.
func slotMatches(slots []models.TimeOfDay, at models.TimeOfDay) bool {
	for _, s := range slots {
		if s == at {
			return true
		}
	}
	return false
}
