package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/platform/logger"
	"github.com/bricamarket/brica-api/internal/store"
)

// ListingService provides listing-related operations.
type ListingService interface {
	// CreateListing validates the uploaded image, persists it with its
	// metadata under a freshly generated name, and returns the stored
	// listing including its resolvable URL.
	CreateListing(ctx context.Context, image []byte, meta domain.ListingMetadata) (*domain.Listing, error)

	// ListListings enumerates all stored listings without image bytes.
	// Ordering follows the underlying store and is not guaranteed.
	ListListings(ctx context.Context) ([]domain.Listing, error)

	// GetListingImage returns the image bytes and content type stored
	// under name. Returns store.ErrListingNotFound if no such listing
	// exists.
	GetListingImage(ctx context.Context, name string) ([]byte, string, error)

	// DeleteListing removes the listing stored under name.
	// Returns store.ErrListingNotFound if no such listing exists.
	DeleteListing(ctx context.Context, name string) error
}

// listingService is the default ListingService implementation on top of a
// ListingStore.
type listingService struct {
	listings store.ListingStore
	logger   *slog.Logger
}

// NewListingService creates a new ListingService with the given dependencies.
func NewListingService(listings store.ListingStore, log *slog.Logger) (ListingService, error) {
	if listings == nil {
		return nil, fmt.Errorf("listing store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &listingService{
		listings: listings,
		logger:   log.With(slog.String("component", "listing_service")),
	}, nil
}

// CreateListing implements ListingService.CreateListing
// Returns domain.ErrNoFile for empty image bytes and
// domain.ErrUnsupportedImage when the bytes do not sniff as JPEG or PNG.
// Nothing is persisted on a validation failure.
func (s *listingService) CreateListing(
	ctx context.Context,
	image []byte,
	meta domain.ListingMetadata,
) (*domain.Listing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sniffed, err := domain.SniffImage(image)
	if err != nil {
		log.Warn("rejected listing upload",
			slog.String("error", err.Error()),
			slog.Int("size_bytes", len(image)))
		return nil, err
	}

	listing := &domain.Listing{
		Name:     domain.NewListingName(meta.Seller),
		Metadata: meta.WithDefaults(),
		Image:    image,
	}

	url, err := s.listings.Save(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("failed to save listing: %w", err)
	}
	listing.URL = url

	log.Info("listing created",
		slog.String("name", listing.Name),
		slog.String("item_name", listing.Metadata.ItemName),
		slog.String("sniffed_type", sniffed))

	return listing, nil
}

// ListListings implements ListingService.ListListings
func (s *listingService) ListListings(ctx context.Context) ([]domain.Listing, error) {
	listings, err := s.listings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// GetListingImage implements ListingService.GetListingImage
func (s *listingService) GetListingImage(ctx context.Context, name string) ([]byte, string, error) {
	return s.listings.Read(ctx, name)
}

// DeleteListing implements ListingService.DeleteListing
func (s *listingService) DeleteListing(ctx context.Context, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.listings.Delete(ctx, name); err != nil {
		return err
	}

	log.Info("listing deleted", slog.String("name", name))
	return nil
}
