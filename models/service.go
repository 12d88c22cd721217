package models

import "time"

// DefaultPriorityOrder is assigned when a submission carries no
// explicit priority. Lower values rank first.
const DefaultPriorityOrder = 999

// AgencyService is the one bookable guided-visit service an agency
// publishes. The schedule is persisted as two independent blobs (Hours
// and ExcludedDates) beside the scalar fields; Schedule is the decoded
// form and is never stored directly.
type AgencyService struct {
	ID              string  `bson:"id" json:"id"`
	AgencyID        string  `bson:"agencyId" json:"agencyId"`
	Active          bool    `bson:"active" json:"active"`
	PriceAdult      float64 `bson:"priceAdult" json:"priceAdult"`
	PriceChild      float64 `bson:"priceChild" json:"priceChild"`
	PriceChildMinor float64 `bson:"priceChildMinor" json:"priceChildMinor"`
	Title           string  `bson:"title" json:"title"`
	Description     string  `bson:"description" json:"description"`
	PriorityOrder   int     `bson:"priorityOrder" json:"priorityOrder"`

	// Image references only; upload and storage of the binaries is
	// handled elsewhere.
	LogoURL  string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	CoverURL string `bson:"coverUrl,omitempty" json:"coverUrl,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	Hours         ScheduleDoc      `bson:"hours,omitempty" json:"hours,omitempty"`
	ExcludedDates ExcludedDatesDoc `bson:"excludedDates,omitempty" json:"excludedDates,omitempty"`

	// AgencyName is populated by the active-services aggregation, not
	// stored on the service document itself.
	AgencyName string `bson:"agencyName,omitempty" json:"agencyName,omitempty"`

	// Schedule is the decoded availability; nil when the stored blobs
	// failed to decode, in which case the service offers nothing.
	Schedule Schedule `bson:"-" json:"-"`
}

// DaySubmission is the admin-form payload for one weekday.
type DaySubmission struct {
	Enabled       bool                `json:"enabled"`
	Mode          string              `json:"mode"` // "recurring" | "specific"
	Slots         []string            `json:"slots,omitempty"`
	Dates         map[string][]string `json:"dates,omitempty"`
	ExcludedDates []string            `json:"excludedDates,omitempty"`
	Languages     []string            `json:"languages,omitempty"`
}

// ServiceSubmission is a full create-or-replace submission for an
// agency's service. It is validated as a whole and persisted as a
// whole; there is no field-by-field patching.
type ServiceSubmission struct {
	Active          bool                     `json:"active"`
	Days            map[string]DaySubmission `json:"days"`
	PriceAdult      float64                  `json:"priceAdult"`
	PriceChild      float64                  `json:"priceChild"`
	PriceChildMinor float64                  `json:"priceChildMinor"`
	Title           string                   `json:"title"`
	Description     string                   `json:"description"`
	PriorityOrder   int                      `json:"priorityOrder"`
	LogoURL         string                   `json:"logoUrl,omitempty"`
	CoverURL        string                   `json:"coverUrl,omitempty"`
}

// AvailabilityQuery asks which services are bookable at a given date
// and time.
type AvailabilityQuery struct {
	Date string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time string `json:"time" binding:"required"` // "HH:MM" or "HH:MM:SS"
}

// AvailableService is one ranked match returned to the booking flow.
type AvailableService struct {
	ServiceID       string  `json:"serviceId"`
	AgencyName      string  `json:"agencyName"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	PriceAdult      float64 `json:"priceAdult"`
	PriceChild      float64 `json:"priceChild"`
	PriceChildMinor float64 `json:"priceChildMinor"`
	LogoURL         string  `json:"logoUrl,omitempty"`
	CoverURL        string  `json:"coverUrl,omitempty"`
}

// ToAvailable projects the service onto the booking-flow response shape.
func (s AgencyService) ToAvailable() AvailableService {
	return AvailableService{
		ServiceID:       s.ID,
		AgencyName:      s.AgencyName,
		Title:           s.Title,
		Description:     s.Description,
		PriceAdult:      s.PriceAdult,
		PriceChild:      s.PriceChild,
		PriceChildMinor: s.PriceChildMinor,
		LogoURL:         s.LogoURL,
		CoverURL:        s.CoverURL,
	}
}
