package agencyRepo

import "reservas/models"

// AgencyRepository defines data access methods for agencies. Agencies
// themselves are managed by the partner-onboarding flow; this service
// only reads them.
type AgencyRepository interface {
	GetByID(id string) (*models.Agency, error)
	GetAll() ([]models.Agency, error)
	Exists(id string) (bool, error)
}
