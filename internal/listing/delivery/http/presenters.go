package http

import (
	"github.com/shopspring/decimal"

	"property-listing-service/internal/listing"
	"property-listing-service/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title"       binding:"required,min=1,max=255"`
	Description string  `json:"description" binding:"max=4000"`
	Price       string  `json:"price"       binding:"required"`
	CityID      string  `json:"city_id"     binding:"required"`
	TypeID      string  `json:"type_id"     binding:"required"`
	AgentID     string  `json:"agent_id"    binding:"required"`
	Beds        int     `json:"beds"        binding:"min=0"`
	Baths       int     `json:"baths"       binding:"min=0"`
	Area        *string `json:"area"`
	Featured    *bool   `json:"featured"`
	Status      *string `json:"status"`
}

func (r createReq) toInput() (listing.CreateInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return listing.CreateInput{}, listing.ErrInvalidPayload
	}

	in := listing.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       price,
		CityID:      r.CityID,
		TypeID:      r.TypeID,
		AgentID:     r.AgentID,
		Beds:        r.Beds,
		Baths:       r.Baths,
		Featured:    r.Featured,
		Status:      r.Status,
	}

	if r.Area != nil {
		area, err := decimal.NewFromString(*r.Area)
		if err != nil {
			return listing.CreateInput{}, listing.ErrInvalidPayload
		}
		in.Area = &area
	}
	return in, nil
}

// ---

type updateReq struct {
	ID          string  `json:"-"` // populated from URI param
	Title       string  `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string  `json:"description" binding:"omitempty,max=4000"`
	Price       *string `json:"price"`
	CityID      string  `json:"city_id"`
	TypeID      string  `json:"type_id"`
	Beds        *int    `json:"beds"`
	Baths       *int    `json:"baths"`
	Area        *string `json:"area"`
	Featured    *bool   `json:"featured"`
	Status      *string `json:"status"`
}

func (r updateReq) toInput() (listing.UpdateInput, error) {
	in := listing.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		CityID:      r.CityID,
		TypeID:      r.TypeID,
		Beds:        r.Beds,
		Baths:       r.Baths,
		Featured:    r.Featured,
		Status:      r.Status,
	}

	if r.Price != nil {
		price, err := decimal.NewFromString(*r.Price)
		if err != nil {
			return listing.UpdateInput{}, listing.ErrInvalidPayload
		}
		in.Price = &price
	}
	if r.Area != nil {
		area, err := decimal.NewFromString(*r.Area)
		if err != nil {
			return listing.UpdateInput{}, listing.ErrInvalidPayload
		}
		in.Area = &area
	}
	return in, nil
}

// --- Response DTOs ---

type listingResp struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	CityID      string  `json:"city_id"`
	TypeID      string  `json:"type_id"`
	AgentID     string  `json:"agent_id"`
	Beds        int     `json:"beds"`
	Baths       int     `json:"baths"`
	Area        *string `json:"area,omitempty"`
	Featured    *bool   `json:"featured,omitempty"`
	Status      *string `json:"status,omitempty"`
	Active      bool    `json:"active"`
}

func newListingResp(l model.Listing) listingResp {
	resp := listingResp{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price.String(),
		CityID:      l.CityID,
		TypeID:      l.TypeID,
		AgentID:     l.AgentID,
		Beds:        l.Beds,
		Baths:       l.Baths,
		Featured:    l.Featured,
		Status:      l.Status,
		Active:      l.IsActive(),
	}
	if l.Area != nil {
		area := l.Area.String()
		resp.Area = &area
	}
	return resp
}

type listResp struct {
	Listings []listingResp `json:"listings"`
	Count    int           `json:"count"`
}

func newListResp(items []model.Listing) listResp {
	out := make([]listingResp, len(items))
	for i, l := range items {
		out[i] = newListingResp(l)
	}
	return listResp{Listings: out, Count: len(out)}
}

type countResp struct {
	AgentID string `json:"agent_id"`
	Active  int    `json:"active"`
	HasAny  bool   `json:"has_any"`
}

type namesResp struct {
	Names []string `json:"names"`
}
