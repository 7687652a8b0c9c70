package usecase

import (
	"context"
	"errors"

	"property-listing-service/internal/listing"
	"property-listing-service/internal/listing/filter"
	"property-listing-service/internal/listing/repository"
	"property-listing-service/internal/model"
)

// Search runs a criteria search. The primary path is the remote search
// endpoint with residual local filtering; the known-defect status code
// degrades to a bulk fetch (through the cache) with full local
// filtering. Every search resolves within two remote calls, and remote
// failures never escape to the caller.
func (uc *implUseCase) Search(ctx context.Context, input listing.SearchInput) (listing.SearchOutput, error) {
	crit := uc.translate(ctx, input)

	results, err := uc.repo.Search(ctx, repository.FetchOptions{
		Term:     crit.Term,
		CityID:   crit.CityID,
		TypeID:   crit.TypeID,
		MaxPrice: crit.MaxPrice,
	})
	if err == nil {
		matched := filter.Apply(results, crit, filter.Residual)
		return searchOutput(matched), nil
	}

	switch {
	case errors.Is(err, repository.ErrUnreachable):
		// The fallback path talks to the same unreachable service, so a
		// second call would only fail again.
		uc.l.Warnf(ctx, "Search: listing service unreachable, returning empty result: %v", err)
		return searchOutput(nil), nil

	case uc.isKnownDefect(err):
		uc.l.Warnf(ctx, "Search: known-defect status %d from listing service, degrading to local filtering", uc.defectCode)
		snapshot, gerr := uc.GetAll(ctx)
		if gerr != nil {
			return searchOutput(nil), nil
		}
		matched := filter.Apply(snapshot, crit, filter.None)
		return searchOutput(matched), nil

	default:
		uc.l.Errorf(ctx, "Search: listing service error: %v", err)
		return searchOutput(nil), nil
	}
}

// isKnownDefect reports whether err is the remote status code known to
// correlate with the service's data-shape defect.
func (uc *implUseCase) isKnownDefect(err error) bool {
	code, ok := repository.StatusCode(err)
	return ok && code == uc.defectCode
}

func searchOutput(items []model.Listing) listing.SearchOutput {
	if items == nil {
		items = []model.Listing{}
	}
	return listing.SearchOutput{
		Listings: items,
		Count:    len(items),
	}
}
