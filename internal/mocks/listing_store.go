package mocks

import (
	"context"
	"sync"

	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/store"
)

// MockListingStore implements store.ListingStore for testing using an
// in-memory map of objects.
type MockListingStore struct {
	// Function fields for customizable behavior
	SaveFn   func(ctx context.Context, listing *domain.Listing) (string, error)
	ListFn   func(ctx context.Context) ([]domain.Listing, error)
	ReadFn   func(ctx context.Context, name string) ([]byte, string, error)
	DeleteFn func(ctx context.Context, name string) error

	// Data for default implementation
	mu        sync.Mutex
	Objects   map[string]domain.Listing
	SaveError error
	ListError error
}

// NewMockListingStore creates a new mock store with initialized defaults
func NewMockListingStore() *MockListingStore {
	return &MockListingStore{
		Objects: make(map[string]domain.Listing),
	}
}

// Ensure MockListingStore implements store.ListingStore interface
var _ store.ListingStore = (*MockListingStore)(nil)

// Save implements the ListingStore interface
func (m *MockListingStore) Save(ctx context.Context, listing *domain.Listing) (string, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, listing)
	}

	if m.SaveError != nil {
		return "", m.SaveError
	}

	url := "http://store.test/api/v1/images/" + listing.Name

	m.mu.Lock()
	stored := *listing
	stored.URL = url
	m.Objects[listing.Name] = stored
	m.mu.Unlock()

	return url, nil
}

// List implements the ListingStore interface
func (m *MockListingStore) List(ctx context.Context) ([]domain.Listing, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	listings := make([]domain.Listing, 0, len(m.Objects))
	for _, l := range m.Objects {
		summary := l
		summary.Image = nil
		listings = append(listings, summary)
	}
	return listings, nil
}

// Read implements the ListingStore interface
func (m *MockListingStore) Read(ctx context.Context, name string) ([]byte, string, error) {
	if m.ReadFn != nil {
		return m.ReadFn(ctx, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.Objects[name]
	if !ok {
		return nil, "", store.ErrListingNotFound
	}
	return l.Image, domain.ListingContentType, nil
}

// Delete implements the ListingStore interface
func (m *MockListingStore) Delete(ctx context.Context, name string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Objects[name]; !ok {
		return store.ErrListingNotFound
	}
	delete(m.Objects, name)
	return nil
}
