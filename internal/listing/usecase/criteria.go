package usecase

import (
	"context"

	"property-listing-service/internal/listing"
	"property-listing-service/internal/listing/filter"
)

// translate converts caller-supplied, human-readable filter values into
// the remote service's canonical identifiers. An unresolved name (typo,
// stale reference) drops to "no constraint" rather than failing the
// search; numeric fields pass through in exact decimal form.
func (uc *implUseCase) translate(ctx context.Context, input listing.SearchInput) filter.Criteria {
	c := filter.Criteria{
		Term:     input.Term,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		MinBeds:  input.MinBeds,
		MinBaths: input.MinBaths,
		MinArea:  input.MinArea,
		MaxArea:  input.MaxArea,
		Featured: input.Featured,
	}

	if input.CityName != "" {
		id, found, err := uc.dir.CityID(ctx, input.CityName)
		switch {
		case err != nil:
			uc.l.Warnf(ctx, "translate: city lookup failed for %q, dropping constraint: %v", input.CityName, err)
		case !found:
			uc.l.Warnf(ctx, "translate: unknown city %q, dropping constraint", input.CityName)
		default:
			c.CityID = id
		}
	}

	if input.TypeName != "" {
		id, found, err := uc.dir.PropertyTypeID(ctx, input.TypeName)
		switch {
		case err != nil:
			uc.l.Warnf(ctx, "translate: property type lookup failed for %q, dropping constraint: %v", input.TypeName, err)
		case !found:
			uc.l.Warnf(ctx, "translate: unknown property type %q, dropping constraint", input.TypeName)
		default:
			c.TypeID = id
		}
	}

	return c
}
