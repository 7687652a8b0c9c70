package repository

import (
	"context"

	"property-listing-service/internal/model"
)

// Repository is the typed call surface of the remote listing data
// service. Implementations classify every outcome into the error kinds
// in errors.go; no transport- or framework-specific error types escape.
type Repository interface {
	// FetchAll is the bulk read: unfiltered when opt is zero, or
	// minimally filtered by the remote-supported dimensions.
	FetchAll(ctx context.Context, opt FetchOptions) ([]model.Listing, error)

	// Search is the remote criteria search over the same dimensions.
	Search(ctx context.Context, opt FetchOptions) ([]model.Listing, error)

	FetchByAgent(ctx context.Context, agentID string) ([]model.Listing, error)
	FetchByCity(ctx context.Context, cityID string) ([]model.Listing, error)
	FetchFeatured(ctx context.Context) ([]model.Listing, error)
	FetchByID(ctx context.Context, id string) (model.Listing, error)

	CreateListing(ctx context.Context, opt CreateListingOptions) (model.Listing, error)
	UpdateListing(ctx context.Context, opt UpdateListingOptions) error
	DeleteListing(ctx context.Context, id string) error
}
