package serviceRepo

import "reservas/models"

// AgencyServiceRepository defines data access methods for agency
// services. Each agency owns at most one service document; writes are
// whole-document replacements so a concurrent reader never observes a
// half-updated schedule.
type AgencyServiceRepository interface {
	GetByAgency(agencyID string) (*models.AgencyService, error)
	// Upsert atomically replaces the agency's service document, creating
	// it if absent.
	Upsert(svc *models.AgencyService) error
	// SetActive flips the active flag without touching the rest of the
	// record, preserving it for later reactivation.
	SetActive(agencyID string, active bool) error
	Delete(agencyID string) error
	// ListActiveWithAgency returns active services whose owning agency
	// is also active, with AgencyName populated. Order is unspecified;
	// the availability resolver re-sorts.
	ListActiveWithAgency() ([]models.AgencyService, error)
}
