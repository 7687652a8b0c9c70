package remote

import (
	"context"
	"strings"

	"property-listing-service/internal/refdata"
	"property-listing-service/pkg/cache"
	pkgLog "property-listing-service/pkg/log"
)

type implDirectory struct {
	client *Client
	store  *cache.Store[[]refdata.Entry]
	l      pkgLog.Logger
}

// NewDirectory creates the remote-backed, cached reference directory.
// Name lists are cached under the city-names and property-type-names
// keys and refetched lazily after eviction or expiry.
func NewDirectory(client *Client, store *cache.Store[[]refdata.Entry], l pkgLog.Logger) refdata.Directory {
	return &implDirectory{
		client: client,
		store:  store,
		l:      l,
	}
}

func (d *implDirectory) CityID(ctx context.Context, name string) (string, bool, error) {
	entries, err := d.cities(ctx)
	if err != nil {
		return "", false, err
	}
	return lookup(entries, name)
}

func (d *implDirectory) PropertyTypeID(ctx context.Context, name string) (string, bool, error) {
	entries, err := d.propertyTypes(ctx)
	if err != nil {
		return "", false, err
	}
	return lookup(entries, name)
}

func (d *implDirectory) CityNames(ctx context.Context) ([]string, error) {
	entries, err := d.cities(ctx)
	if err != nil {
		return nil, err
	}
	return names(entries), nil
}

func (d *implDirectory) PropertyTypeNames(ctx context.Context) ([]string, error) {
	entries, err := d.propertyTypes(ctx)
	if err != nil {
		return nil, err
	}
	return names(entries), nil
}

func (d *implDirectory) cities(ctx context.Context) ([]refdata.Entry, error) {
	return d.entries(ctx, cache.KeyCityNames, d.client.Cities)
}

func (d *implDirectory) propertyTypes(ctx context.Context) ([]refdata.Entry, error) {
	return d.entries(ctx, cache.KeyPropertyTypeNames, d.client.PropertyTypes)
}

func (d *implDirectory) entries(ctx context.Context, key string, fetch func(context.Context) ([]refdata.Entry, error)) ([]refdata.Entry, error) {
	if cached, ok := d.store.Get(key); ok {
		return cached, nil
	}

	entries, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	// An empty index usually means a transient remote problem; keep the
	// cache cold so the next call refetches.
	if len(entries) > 0 {
		d.store.Put(key, entries)
	}
	return entries, nil
}

func lookup(entries []refdata.Entry, name string) (string, bool, error) {
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e.ID, true, nil
		}
	}
	return "", false, nil
}

func names(entries []refdata.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}
