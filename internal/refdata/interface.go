// Package refdata consumes the application's small reference tables
// (cities, property types). The listing core only needs a
// case-insensitive name-to-identifier lookup plus the name lists.
package refdata

import "context"

// Entry is one reference row: a canonical identifier and its
// human-readable name.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Directory resolves human-readable reference names to canonical
// identifiers. Lookups are case-insensitive; an unknown name reports
// found=false, never an error.
type Directory interface {
	CityID(ctx context.Context, name string) (id string, found bool, err error)
	PropertyTypeID(ctx context.Context, name string) (id string, found bool, err error)

	CityNames(ctx context.Context) ([]string, error)
	PropertyTypeNames(ctx context.Context) ([]string, error)
}
