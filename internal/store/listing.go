package store

import (
	"context"

	"github.com/bricamarket/brica-api/internal/domain"
)

// ListingStore defines the interface for the listing object store: named
// binary objects with per-object metadata.
type ListingStore interface {
	// Save persists the listing's image bytes and metadata under
	// listing.Name with overwrite semantics: a name collision silently
	// replaces prior content. Returns the resolvable URL assigned to the
	// object.
	Save(ctx context.Context, listing *domain.Listing) (string, error)

	// List enumerates all stored listings as projections without image
	// bytes. Ordering is whatever the underlying store returns; callers
	// must not assume any order.
	List(ctx context.Context) ([]domain.Listing, error)

	// Read returns the image bytes and content type stored under name.
	// Returns ErrListingNotFound if no such object exists.
	Read(ctx context.Context, name string) ([]byte, string, error)

	// Delete removes the object stored under name.
	// Returns ErrListingNotFound if no such object exists.
	Delete(ctx context.Context, name string) error
}
