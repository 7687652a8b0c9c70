package usecase

import (
	"context"
	"fmt"

	"property-listing-service/internal/listing"
	"property-listing-service/internal/listing/repository"
	"property-listing-service/internal/model"
)

// Create creates a listing in the remote service and evicts the bulk
// caches once the mutation has succeeded. A failed mutation leaves the
// caches untouched.
func (uc *implUseCase) Create(ctx context.Context, input listing.CreateInput) (model.Listing, error) {
	if input.Title == "" || input.CityID == "" || input.TypeID == "" || input.AgentID == "" {
		return model.Listing{}, listing.ErrInvalidPayload
	}

	created, err := uc.repo.CreateListing(ctx, repository.CreateListingOptions{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		CityID:      input.CityID,
		TypeID:      input.TypeID,
		AgentID:     input.AgentID,
		Beds:        input.Beds,
		Baths:       input.Baths,
		Area:        input.Area,
		Featured:    input.Featured,
		Status:      input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Create: listing service error: %v", err)
		return model.Listing{}, fmt.Errorf("%w: %v", listing.ErrMutationFailed, err)
	}

	uc.EvictAll(ctx)
	return created, nil
}

// Update applies a partial update and evicts the bulk caches on success.
func (uc *implUseCase) Update(ctx context.Context, input listing.UpdateInput) error {
	if input.ID == "" {
		return listing.ErrEmptyID
	}

	err := uc.repo.UpdateListing(ctx, repository.UpdateListingOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		CityID:      input.CityID,
		TypeID:      input.TypeID,
		Beds:        input.Beds,
		Baths:       input.Baths,
		Area:        input.Area,
		Featured:    input.Featured,
		Status:      input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Update: listing service error for %s: %v", input.ID, err)
		return fmt.Errorf("%w: %v", listing.ErrMutationFailed, err)
	}

	uc.EvictAll(ctx)
	return nil
}

// Delete removes a listing and evicts the bulk caches on success.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return listing.ErrEmptyID
	}

	if err := uc.repo.DeleteListing(ctx, id); err != nil {
		uc.l.Errorf(ctx, "Delete: listing service error for %s: %v", id, err)
		return fmt.Errorf("%w: %v", listing.ErrMutationFailed, err)
	}

	uc.EvictAll(ctx)
	return nil
}
