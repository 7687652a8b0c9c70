package model

import "github.com/shopspring/decimal"

// StatusActive is the explicit active status value used by the remote
// listing service. A listing with no status at all is also active.
const StatusActive = "ACTIVE"

// Listing is the unit of data exchanged with the remote listing service
// and held in the bulk cache.
type Listing struct {
	ID          string
	Title       string
	Description string
	Price       decimal.Decimal
	CityID      string
	TypeID      string
	AgentID     string
	Beds        int
	Baths       int
	Area        *decimal.Decimal // nil when the remote record carries no area
	Featured    *bool            // nil when the remote record carries no flag
	Status      *string          // nil means active
}

// IsActive reports whether the listing counts as active. A nil status
// defaults to active; this is a deliberate default of the remote
// service's data model, not an error state.
func (l Listing) IsActive() bool {
	return l.Status == nil || *l.Status == StatusActive
}
