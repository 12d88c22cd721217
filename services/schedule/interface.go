package schedule

import "reservas/models"

// Validator normalizes and validates a submitted service schedule
// before the caller persists it. Validation is pure; persistence is a
// separate step.
type Validator interface {
	Validate(sub models.ServiceSubmission) (models.Schedule, error)
}

// EditSession identifies the admin edit in progress: which agency's
// service is being edited and by whom. It is passed explicitly into
// every operation that needs it.
type EditSession struct {
	AgencyID string
	Actor    string
}
