package usecase_test

import (
	"context"

	"property-listing-service/internal/listing/repository"
	"property-listing-service/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is a func-field stub of repository.Repository with call
// counters so tests can verify how many remote calls each path makes.
type mockRepo struct {
	fetchAllFunc      func(opt repository.FetchOptions) ([]model.Listing, error)
	searchFunc        func(opt repository.FetchOptions) ([]model.Listing, error)
	fetchByAgentFunc  func(agentID string) ([]model.Listing, error)
	fetchByCityFunc   func(cityID string) ([]model.Listing, error)
	fetchFeaturedFunc func() ([]model.Listing, error)
	fetchByIDFunc     func(id string) (model.Listing, error)
	createFunc        func(opt repository.CreateListingOptions) (model.Listing, error)
	updateFunc        func(opt repository.UpdateListingOptions) error
	deleteFunc        func(id string) error

	fetchAllCalls      int
	searchCalls        int
	fetchByAgentCalls  int
	fetchFeaturedCalls int
}

func (m *mockRepo) FetchAll(ctx context.Context, opt repository.FetchOptions) ([]model.Listing, error) {
	m.fetchAllCalls++
	if m.fetchAllFunc != nil {
		return m.fetchAllFunc(opt)
	}
	return []model.Listing{}, nil
}

func (m *mockRepo) Search(ctx context.Context, opt repository.FetchOptions) ([]model.Listing, error) {
	m.searchCalls++
	if m.searchFunc != nil {
		return m.searchFunc(opt)
	}
	return []model.Listing{}, nil
}

func (m *mockRepo) FetchByAgent(ctx context.Context, agentID string) ([]model.Listing, error) {
	m.fetchByAgentCalls++
	if m.fetchByAgentFunc != nil {
		return m.fetchByAgentFunc(agentID)
	}
	return []model.Listing{}, nil
}

func (m *mockRepo) FetchByCity(ctx context.Context, cityID string) ([]model.Listing, error) {
	if m.fetchByCityFunc != nil {
		return m.fetchByCityFunc(cityID)
	}
	return []model.Listing{}, nil
}

func (m *mockRepo) FetchFeatured(ctx context.Context) ([]model.Listing, error) {
	m.fetchFeaturedCalls++
	if m.fetchFeaturedFunc != nil {
		return m.fetchFeaturedFunc()
	}
	return []model.Listing{}, nil
}

func (m *mockRepo) FetchByID(ctx context.Context, id string) (model.Listing, error) {
	if m.fetchByIDFunc != nil {
		return m.fetchByIDFunc(id)
	}
	return model.Listing{}, repository.ErrNotFound
}

func (m *mockRepo) CreateListing(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Listing{}, nil
}

func (m *mockRepo) UpdateListing(ctx context.Context, opt repository.UpdateListingOptions) error {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return nil
}

func (m *mockRepo) DeleteListing(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

// mockDirectory resolves names from fixed maps, case-insensitively via
// the production code path's expectations (exact keys here).
type mockDirectory struct {
	cities map[string]string
	types  map[string]string
}

func (m *mockDirectory) CityID(ctx context.Context, name string) (string, bool, error) {
	id, ok := m.cities[name]
	return id, ok, nil
}

func (m *mockDirectory) PropertyTypeID(ctx context.Context, name string) (string, bool, error) {
	id, ok := m.types[name]
	return id, ok, nil
}

func (m *mockDirectory) CityNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.cities))
	for n := range m.cities {
		names = append(names, n)
	}
	return names, nil
}

func (m *mockDirectory) PropertyTypeNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.types))
	for n := range m.types {
		names = append(names, n)
	}
	return names, nil
}
