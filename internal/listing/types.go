package listing

import (
	"github.com/shopspring/decimal"

	"property-listing-service/internal/model"
)

// SearchInput is the caller-facing filter description. Every field is
// optional; a zero value or nil pointer means "no constraint on that
// dimension". City and property type are human-readable names resolved
// to remote identifiers before the search is issued.
type SearchInput struct {
	Term     string
	CityName string
	TypeName string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinBeds  *int
	MinBaths *int
	MinArea  *decimal.Decimal
	MaxArea  *decimal.Decimal
	Featured *bool
}

// SearchOutput is the result of a criteria search.
type SearchOutput struct {
	Listings []model.Listing
	Count    int
}

// CreateInput holds the payload for creating a listing in the remote
// service.
type CreateInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	CityID      string
	TypeID      string
	AgentID     string
	Beds        int
	Baths       int
	Area        *decimal.Decimal
	Featured    *bool
	Status      *string
}

// UpdateInput holds the payload for a partial update of an existing
// listing. Nil/empty fields are left untouched by the remote service.
type UpdateInput struct {
	ID          string
	Title       string
	Description string
	Price       *decimal.Decimal
	CityID      string
	TypeID      string
	Beds        *int
	Baths       *int
	Area        *decimal.Decimal
	Featured    *bool
	Status      *string
}
