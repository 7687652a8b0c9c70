package repository

import "github.com/shopspring/decimal"

// FetchOptions holds the filter dimensions the remote service supports
// on its bulk and search endpoints. Zero values mean "no constraint".
type FetchOptions struct {
	Term     string
	CityID   string
	TypeID   string
	MaxPrice *decimal.Decimal
}

// CreateListingOptions holds parameters for creating a listing.
type CreateListingOptions struct {
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

// UpdateListingOptions holds parameters for a partial update. Nil or
// empty fields are omitted from the remote payload.
type UpdateListingOptions struct {
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
