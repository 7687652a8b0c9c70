// Package filter implements the single reusable listing predicate. The
// same function serves two modes: residual filtering after a remote-side
// filtered query, and full filtering over an unfiltered bulk snapshot
// during fallback.
package filter

import (
	"strings"

	"github.com/shopspring/decimal"

	"property-listing-service/internal/model"
)

// Criteria is a translated, remote-identifier form of the caller's
// search filters. Empty strings and nil pointers mean "no constraint".
type Criteria struct {
	Term     string
	CityID   string
	TypeID   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinBeds  *int
	MinBaths *int
	MinArea  *decimal.Decimal
	MaxArea  *decimal.Decimal
	Featured *bool
}

// Applied marks the dimensions a remote-side query has already
// satisfied, so the predicate skips re-checking them.
type Applied struct {
	City     bool
	Type     bool
	MaxPrice bool
	Term     bool
}

// Remote pre-filters city, type, price ceiling and free text; everything
// else is re-checked locally.
var Residual = Applied{City: true, Type: true, MaxPrice: true, Term: true}

// None re-checks every dimension, used against unfiltered snapshots.
var None = Applied{}

// Matches reports whether l satisfies every constrained dimension of c
// not already covered by applied. Numeric comparisons are exact decimal
// comparisons. A listing with a nil value on a constrained dimension
// does not match that dimension.
func Matches(l model.Listing, c Criteria, applied Applied) bool {
	if !applied.Term && !matchesTerm(l, c.Term) {
		return false
	}
	if !applied.City && c.CityID != "" && l.CityID != c.CityID {
		return false
	}
	if !applied.Type && c.TypeID != "" && l.TypeID != c.TypeID {
		return false
	}
	if c.MinPrice != nil && l.Price.LessThan(*c.MinPrice) {
		return false
	}
	if !applied.MaxPrice && c.MaxPrice != nil && l.Price.GreaterThan(*c.MaxPrice) {
		return false
	}
	if c.MinBeds != nil && l.Beds < *c.MinBeds {
		return false
	}
	if c.MinBaths != nil && l.Baths < *c.MinBaths {
		return false
	}
	if c.MinArea != nil && (l.Area == nil || l.Area.LessThan(*c.MinArea)) {
		return false
	}
	if c.MaxArea != nil && (l.Area == nil || l.Area.GreaterThan(*c.MaxArea)) {
		return false
	}
	if c.Featured != nil && (l.Featured == nil || *l.Featured != *c.Featured) {
		return false
	}
	return true
}

// Apply returns the items matching c, preserving input order.
func Apply(items []model.Listing, c Criteria, applied Applied) []model.Listing {
	matched := make([]model.Listing, 0, len(items))
	for _, l := range items {
		if Matches(l, c, applied) {
			matched = append(matched, l)
		}
	}
	return matched
}

// matchesTerm does case-insensitive substring matching on title and
// description. An empty term matches everything.
func matchesTerm(l model.Listing, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(l.Title), needle) ||
		strings.Contains(strings.ToLower(l.Description), needle)
}
