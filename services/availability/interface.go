package availability

import "reservas/models"

// Resolver evaluates an availability query against a snapshot of
// active services and returns the ranked matches. Resolution is pure
// and read-only; concurrent queries need no coordination.
type Resolver interface {
	Resolve(query models.AvailabilityQuery, services []models.AgencyService) ([]models.AgencyService, error)
}

// Catalog loads the point-in-time snapshot of active services the
// resolver scans, one fetch per query.
type Catalog interface {
	LoadActive() ([]models.AgencyService, error)
	// Invalidate drops any cached snapshot; called after every
	// submission write.
	Invalidate()
}
