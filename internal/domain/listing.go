package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
)

// Metadata defaults applied when the uploader omits a field. These sentinel
// strings are part of the wire contract for gallery responses.
const (
	DefaultItemName = "Unknown"
	DefaultPrice    = "N/A"
	DefaultSeller   = "unknown"
)

// ListingMetadata is the typed descriptive metadata attached to a stored
// listing image. Prices are free text and deliberately not parsed as
// numbers.
type ListingMetadata struct {
	ItemName    string `json:"item_name"`
	Price       string `json:"price"`
	Seller      string `json:"seller"`
	SellerEmail string `json:"seller_email,omitempty"`
}

// WithDefaults returns a copy of the metadata with absent fields replaced
// by their sentinel defaults.
func (m ListingMetadata) WithDefaults() ListingMetadata {
	out := m
	if strings.TrimSpace(out.ItemName) == "" {
		out.ItemName = DefaultItemName
	}
	if strings.TrimSpace(out.Price) == "" {
		out.Price = DefaultPrice
	}
	if strings.TrimSpace(out.Seller) == "" {
		out.Seller = DefaultSeller
	}
	return out
}

// Listing is a for-sale item: an image plus descriptive metadata, stored as
// a named object in the object store. Listings are immutable once created;
// the only mutation is full deletion.
type Listing struct {
	// Name is the opaque unique object name, derived from the seller's
	// display name and a random token.
	Name string `json:"name"`

	// URL is the resolvable location assigned by the object store.
	URL string `json:"url"`

	Metadata ListingMetadata `json:"metadata"`

	// Image holds the raw bytes; populated on create and image reads,
	// empty in gallery projections.
	Image []byte `json:"-"`
}

// ListingContentType is the content type every stored listing image is
// delivered with, regardless of the sniffed type. Carried over from the
// original storage layout; changing it would break existing objects.
const ListingContentType = "image/jpeg"

// NewListingName derives a globally unique object name from the seller's
// display name and a random token. Collisions are not checked; the
// birthday-bound probability is treated as negligible.
func NewListingName(seller string) string {
	seller = strings.TrimSpace(seller)
	if seller == "" {
		seller = DefaultSeller
	}
	return fmt.Sprintf("%s-%s.jpg", seller, uuid.New())
}

// SniffImage inspects the magic header of the given bytes and returns the
// detected MIME type. Returns ErrNoFile for empty input and
// ErrUnsupportedImage unless the bytes identify as JPEG or PNG.
func SniffImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNoFile
	}

	kind, err := filetype.Match(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	switch kind {
	case matchers.TypeJpeg, matchers.TypePng:
		return kind.MIME.Value, nil
	default:
		return "", ErrUnsupportedImage
	}
}
