package listing

import (
	"context"

	"property-listing-service/internal/model"
)

// UseCase is the business logic interface for the listing domain: a
// resilient aggregation and caching layer over the remote listing data
// service. Read operations never surface remote-service failures; they
// log and resolve to empty results. Mutations surface ErrMutationFailed
// and evict the bulk cache only after the remote mutation succeeds.
type UseCase interface {
	// Search runs a criteria search against the remote service,
	// degrading to local filtering over the cached bulk snapshot when
	// the service reports its known-defect status code.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)

	// GetAll returns the bulk snapshot, served from cache when warm.
	GetAll(ctx context.Context) ([]model.Listing, error)

	// GetFeatured returns featured listings, served from cache when warm.
	GetFeatured(ctx context.Context) ([]model.Listing, error)

	// GetByID fetches a single listing from the remote service.
	GetByID(ctx context.Context, id string) (model.Listing, error)

	// GetByCity, GetByAgent and GetByType derive active listings for a
	// reference from the cached bulk snapshot; they issue no remote
	// calls of their own beyond GetAll.
	GetByCity(ctx context.Context, cityID string) ([]model.Listing, error)
	GetByAgent(ctx context.Context, agentID string) ([]model.Listing, error)
	GetByType(ctx context.Context, typeID string) ([]model.Listing, error)

	// GetByAgentDirect uses the dedicated per-agent remote endpoint and
	// falls back to derivation from the bulk snapshot on the known-defect
	// status code.
	GetByAgentDirect(ctx context.Context, agentID string) ([]model.Listing, error)

	// HasActiveByAgent and CountActiveByAgent are pure derivations over
	// GetAll plus the active-status rule.
	HasActiveByAgent(ctx context.Context, agentID string) (bool, error)
	CountActiveByAgent(ctx context.Context, agentID string) (int, error)

	Create(ctx context.Context, input CreateInput) (model.Listing, error)
	Update(ctx context.Context, input UpdateInput) error
	Delete(ctx context.Context, id string) error

	// EvictAll clears the cached bulk snapshots. Mutation paths call it
	// after the remote mutation succeeds; it is exported for callers
	// that mutate the dataset through other channels.
	EvictAll(ctx context.Context)
}
