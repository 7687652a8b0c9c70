package usecase

import (
	"context"
	"errors"

	"property-listing-service/internal/listing"
	"property-listing-service/internal/listing/repository"
	"property-listing-service/internal/model"
	"property-listing-service/pkg/cache"
)

// GetAll returns the bulk listing snapshot, from cache when warm. An
// empty remote response is returned but never cached: it usually means
// a transient remote outage, and caching it would keep serving nothing
// after the service recovers. Remote failures resolve to an empty list.
func (uc *implUseCase) GetAll(ctx context.Context) ([]model.Listing, error) {
	if cached, ok := uc.bulkCache.Get(cache.KeyAllListings); ok {
		return cached, nil
	}

	items, err := uc.repo.FetchAll(ctx, repository.FetchOptions{})
	if err != nil {
		uc.logRemoteFailure(ctx, "GetAll", err)
		return []model.Listing{}, nil
	}
	if len(items) > 0 {
		uc.bulkCache.Put(cache.KeyAllListings, items)
	}
	return items, nil
}

// GetFeatured returns featured listings with the same cache and
// empty-skip rules as GetAll, under its own key.
func (uc *implUseCase) GetFeatured(ctx context.Context) ([]model.Listing, error) {
	if cached, ok := uc.bulkCache.Get(cache.KeyFeaturedListings); ok {
		return cached, nil
	}

	items, err := uc.repo.FetchFeatured(ctx)
	if err != nil {
		uc.logRemoteFailure(ctx, "GetFeatured", err)
		return []model.Listing{}, nil
	}
	if len(items) > 0 {
		uc.bulkCache.Put(cache.KeyFeaturedListings, items)
	}
	return items, nil
}

// GetByID fetches a single listing. Remote failures are logged and
// reported as not-found so no remote error escapes.
func (uc *implUseCase) GetByID(ctx context.Context, id string) (model.Listing, error) {
	if id == "" {
		return model.Listing{}, listing.ErrEmptyID
	}

	item, err := uc.repo.FetchByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			uc.logRemoteFailure(ctx, "GetByID", err)
		}
		return model.Listing{}, listing.ErrListingNotFound
	}
	return item, nil
}

// GetByCity derives the active listings of a city from the cached bulk
// snapshot; it issues no remote call of its own.
func (uc *implUseCase) GetByCity(ctx context.Context, cityID string) ([]model.Listing, error) {
	if cityID == "" {
		return nil, listing.ErrEmptyID
	}
	return uc.deriveActive(ctx, func(l model.Listing) bool { return l.CityID == cityID })
}

// GetByAgent derives the active listings of an agent from the cached
// bulk snapshot.
func (uc *implUseCase) GetByAgent(ctx context.Context, agentID string) ([]model.Listing, error) {
	if agentID == "" {
		return nil, listing.ErrEmptyID
	}
	return uc.deriveActive(ctx, func(l model.Listing) bool { return l.AgentID == agentID })
}

// GetByType derives the active listings of a property type from the
// cached bulk snapshot.
func (uc *implUseCase) GetByType(ctx context.Context, typeID string) ([]model.Listing, error) {
	if typeID == "" {
		return nil, listing.ErrEmptyID
	}
	return uc.deriveActive(ctx, func(l model.Listing) bool { return l.TypeID == typeID })
}

// GetByAgentDirect prefers the dedicated per-agent remote endpoint and
// mirrors the search orchestrator's resilience pattern independently:
// the known-defect status code degrades to derivation from the bulk
// snapshot, unreachable or other errors resolve to an empty list.
func (uc *implUseCase) GetByAgentDirect(ctx context.Context, agentID string) ([]model.Listing, error) {
	if agentID == "" {
		return nil, listing.ErrEmptyID
	}

	items, err := uc.repo.FetchByAgent(ctx, agentID)
	if err == nil {
		return activeOnly(items), nil
	}

	switch {
	case errors.Is(err, repository.ErrUnreachable):
		uc.l.Warnf(ctx, "GetByAgentDirect: listing service unreachable, returning empty result: %v", err)
		return []model.Listing{}, nil
	case uc.isKnownDefect(err):
		uc.l.Warnf(ctx, "GetByAgentDirect: known-defect status %d, deriving from bulk snapshot", uc.defectCode)
		return uc.GetByAgent(ctx, agentID)
	default:
		uc.l.Errorf(ctx, "GetByAgentDirect: listing service error: %v", err)
		return []model.Listing{}, nil
	}
}

// HasActiveByAgent reports whether the agent has at least one active
// listing. Pure derivation over GetAll.
func (uc *implUseCase) HasActiveByAgent(ctx context.Context, agentID string) (bool, error) {
	n, err := uc.CountActiveByAgent(ctx, agentID)
	return n > 0, err
}

// CountActiveByAgent counts the agent's active listings. Pure
// derivation over GetAll.
func (uc *implUseCase) CountActiveByAgent(ctx context.Context, agentID string) (int, error) {
	if agentID == "" {
		return 0, listing.ErrEmptyID
	}

	snapshot, err := uc.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, l := range snapshot {
		if l.AgentID == agentID && l.IsActive() {
			count++
		}
	}
	return count, nil
}

// EvictAll clears the cached bulk snapshots. The next read repopulates
// them lazily.
func (uc *implUseCase) EvictAll(ctx context.Context) {
	uc.bulkCache.Evict(cache.KeyAllListings)
	uc.bulkCache.Evict(cache.KeyFeaturedListings)
	uc.l.Debugf(ctx, "EvictAll: bulk listing caches cleared")
}

func (uc *implUseCase) deriveActive(ctx context.Context, keep func(model.Listing) bool) ([]model.Listing, error) {
	snapshot, err := uc.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Listing, 0, len(snapshot))
	for _, l := range snapshot {
		if keep(l) && l.IsActive() {
			out = append(out, l)
		}
	}
	return out, nil
}

func activeOnly(items []model.Listing) []model.Listing {
	out := make([]model.Listing, 0, len(items))
	for _, l := range items {
		if l.IsActive() {
			out = append(out, l)
		}
	}
	return out
}

// logRemoteFailure applies the error taxonomy's log levels: warning for
// unreachable, error for anything else the remote reports.
func (uc *implUseCase) logRemoteFailure(ctx context.Context, op string, err error) {
	if errors.Is(err, repository.ErrUnreachable) {
		uc.l.Warnf(ctx, "%s: listing service unreachable, returning empty result: %v", op, err)
		return
	}
	uc.l.Errorf(ctx, "%s: listing service error: %v", op, err)
}
