package models

import "time"

// Agency statuses.
const (
	AgencyStatusActive    = "active"
	AgencyStatusSuspended = "suspended"
)

// Agency is a third-party partner that publishes a bookable service.
type Agency struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"agencyName" json:"agencyName"`
	ContactPerson string    `bson:"contactPerson" json:"contactPerson"`
	Email         string    `bson:"email" json:"email"`
	Phone         string    `bson:"phone" json:"phone"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// IsActive reports whether the agency may appear in booking results.
func (a Agency) IsActive() bool {
	return a.Status == AgencyStatusActive
}
