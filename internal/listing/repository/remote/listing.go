package remote

import (
	"context"

	"property-listing-service/internal/listing/repository"
	"property-listing-service/internal/model"
	pkgLog "property-listing-service/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates the remote-backed listing repository.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) FetchAll(ctx context.Context, opt repository.FetchOptions) ([]model.Listing, error) {
	objs, err := r.client.ListListings(ctx, toQuery(opt))
	if err != nil {
		return nil, err
	}
	return toModels(objs), nil
}

func (r *implRepository) Search(ctx context.Context, opt repository.FetchOptions) ([]model.Listing, error) {
	objs, err := r.client.SearchListings(ctx, toQuery(opt))
	if err != nil {
		return nil, err
	}
	return toModels(objs), nil
}

func (r *implRepository) FetchByAgent(ctx context.Context, agentID string) ([]model.Listing, error) {
	objs, err := r.client.ListByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	return toModels(objs), nil
}

func (r *implRepository) FetchByCity(ctx context.Context, cityID string) ([]model.Listing, error) {
	objs, err := r.client.ListByCity(ctx, cityID)
	if err != nil {
		return nil, err
	}
	return toModels(objs), nil
}

func (r *implRepository) FetchFeatured(ctx context.Context) ([]model.Listing, error) {
	objs, err := r.client.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	return toModels(objs), nil
}

func (r *implRepository) FetchByID(ctx context.Context, id string) (model.Listing, error) {
	obj, err := r.client.GetListing(ctx, id)
	if err != nil {
		return model.Listing{}, err
	}
	return toModel(*obj), nil
}

func (r *implRepository) CreateListing(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error) {
	price := opt.Price
	payload := ListingPayload{
		Title:       opt.Title,
		Description: opt.Description,
		Price:       &price,
		CityID:      opt.CityID,
		TypeID:      opt.TypeID,
		AgentID:     opt.AgentID,
		Beds:        &opt.Beds,
		Baths:       &opt.Baths,
		Area:        opt.Area,
		Featured:    opt.Featured,
		Status:      opt.Status,
	}

	obj, err := r.client.CreateListing(ctx, payload)
	if err != nil {
		r.l.Errorf(ctx, "listing repository: failed to create listing: %v", err)
		return model.Listing{}, err
	}
	return toModel(*obj), nil
}

func (r *implRepository) UpdateListing(ctx context.Context, opt repository.UpdateListingOptions) error {
	payload := ListingPayload{
		Title:       opt.Title,
		Description: opt.Description,
		Price:       opt.Price,
		CityID:      opt.CityID,
		TypeID:      opt.TypeID,
		Beds:        opt.Beds,
		Baths:       opt.Baths,
		Area:        opt.Area,
		Featured:    opt.Featured,
		Status:      opt.Status,
	}
	return r.client.UpdateListing(ctx, opt.ID, payload)
}

func (r *implRepository) DeleteListing(ctx context.Context, id string) error {
	return r.client.DeleteListing(ctx, id)
}

func toQuery(opt repository.FetchOptions) ListQuery {
	return ListQuery{
		Term:     opt.Term,
		CityID:   opt.CityID,
		TypeID:   opt.TypeID,
		MaxPrice: opt.MaxPrice,
	}
}

// toModel converts the remote service's listing record to the internal
// model. Nullable fields carry through as nil; the active-status default
// is applied by model.Listing.IsActive, not here.
func toModel(obj ListingObject) model.Listing {
	return model.Listing{
		ID:          obj.ID,
		Title:       obj.Title,
		Description: obj.Description,
		Price:       obj.Price,
		CityID:      obj.CityID,
		TypeID:      obj.TypeID,
		AgentID:     obj.AgentID,
		Beds:        obj.Beds,
		Baths:       obj.Baths,
		Area:        obj.Area,
		Featured:    obj.Featured,
		Status:      obj.Status,
	}
}

func toModels(objs []ListingObject) []model.Listing {
	items := make([]model.Listing, 0, len(objs))
	for _, obj := range objs {
		items = append(items, toModel(obj))
	}
	return items
}
