package mongo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/platform/logger"
	"github.com/bricamarket/brica-api/internal/store"
)

// imagePathPrefix is the route under which stored objects are served.
// The URL assigned to an object is <publicURL><imagePathPrefix><name>.
const imagePathPrefix = "/api/v1/images/"

// GridFSListingStore implements the store.ListingStore interface using a
// MongoDB GridFS bucket as the storage backend. Image bytes live in the
// bucket's chunks; the typed listing metadata rides on the files document.
type GridFSListingStore struct {
	bucket    *gridfs.Bucket
	publicURL string
	logger    *slog.Logger
}

// listingDoc is the BSON shape of the metadata stored on a GridFS files
// document.
type listingDoc struct {
	ItemName    string `bson:"item_name"`
	Price       string `bson:"price"`
	Seller      string `bson:"seller"`
	SellerEmail string `bson:"seller_email,omitempty"`
	ContentType string `bson:"content_type"`
}

// gridfsFile is the subset of a GridFS files document this store reads.
type gridfsFile struct {
	ID       primitive.ObjectID `bson:"_id"`
	Name     string             `bson:"filename"`
	Metadata listingDoc         `bson:"metadata"`
}

// NewGridFSListingStore creates a listing store backed by the named GridFS
// bucket in the given database. publicURL is the externally reachable base
// under which object URLs resolve. If log is nil, a default logger is used.
func NewGridFSListingStore(
	db *mongo.Database,
	bucketName string,
	publicURL string,
	log *slog.Logger,
) (*GridFSListingStore, error) {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, fmt.Errorf("failed to create gridfs bucket: %w", err)
	}

	return &GridFSListingStore{
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    log.With(slog.String("component", "listing_store")),
	}, nil
}

// Ensure GridFSListingStore implements store.ListingStore interface
var _ store.ListingStore = (*GridFSListingStore)(nil)

// objectURL returns the resolvable URL for the object stored under name.
func (s *GridFSListingStore) objectURL(name string) string {
	return s.publicURL + imagePathPrefix + url.PathEscape(name)
}

// Save implements store.ListingStore.Save
// GridFS has no native overwrite, so any existing files with the same name
// are deleted first; a generated-name collision therefore silently replaces
// prior content, matching the store contract.
func (s *GridFSListingStore) Save(ctx context.Context, listing *domain.Listing) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.deleteByName(ctx, listing.Name); err != nil &&
		!errors.Is(err, store.ErrListingNotFound) {
		return "", fmt.Errorf("failed to replace existing object: %w", err)
	}

	meta := listing.Metadata.WithDefaults()
	uploadOpts := options.GridFSUpload().SetMetadata(listingDoc{
		ItemName:    meta.ItemName,
		Price:       meta.Price,
		Seller:      meta.Seller,
		SellerEmail: meta.SellerEmail,
		ContentType: domain.ListingContentType,
	})

	id, err := s.bucket.UploadFromStream(listing.Name, bytes.NewReader(listing.Image), uploadOpts)
	if err != nil {
		log.Error("failed to upload listing object",
			slog.String("error", err.Error()),
			slog.String("name", listing.Name))
		return "", fmt.Errorf("failed to upload listing object: %w", err)
	}

	log.Info("listing object stored",
		slog.String("name", listing.Name),
		slog.String("file_id", id.Hex()),
		slog.Int("size_bytes", len(listing.Image)))

	return s.objectURL(listing.Name), nil
}

// List implements store.ListingStore.List
// It enumerates the bucket's files documents and projects them to listing
// summaries. A document that fails to decode is skipped and logged rather
// than aborting the whole enumeration. No ordering is guaranteed.
func (s *GridFSListingStore) List(ctx context.Context) ([]domain.Listing, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cursor, err := s.bucket.Find(bson.M{})
	if err != nil {
		log.Error("failed to enumerate listing objects",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to enumerate listing objects: %w", err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			log.Warn("failed to close listing cursor", slog.String("error", err.Error()))
		}
	}()

	listings := make([]domain.Listing, 0)
	for cursor.Next(ctx) {
		var file gridfsFile
		if err := cursor.Decode(&file); err != nil {
			log.Warn("skipping undecodable listing object",
				slog.String("error", err.Error()))
			continue
		}

		listings = append(listings, domain.Listing{
			Name: file.Name,
			URL:  s.objectURL(file.Name),
			Metadata: domain.ListingMetadata{
				ItemName:    file.Metadata.ItemName,
				Price:       file.Metadata.Price,
				Seller:      file.Metadata.Seller,
				SellerEmail: file.Metadata.SellerEmail,
			}.WithDefaults(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listing objects: %w", err)
	}

	return listings, nil
}

// Read implements store.ListingStore.Read
// Returns store.ErrListingNotFound if no object is stored under name.
func (s *GridFSListingStore) Read(ctx context.Context, name string) ([]byte, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	stream, err := s.bucket.OpenDownloadStreamByName(name)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, "", store.ErrListingNotFound
		}

		log.Error("failed to open listing object",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, "", fmt.Errorf("failed to open listing object: %w", err)
	}
	defer func() {
		if err := stream.Close(); err != nil {
			log.Warn("failed to close download stream", slog.String("error", err.Error()))
		}
	}()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read listing object: %w", err)
	}

	contentType := domain.ListingContentType
	var meta listingDoc
	if file := stream.GetFile(); file != nil && file.Metadata != nil {
		if err := bson.Unmarshal(file.Metadata, &meta); err == nil && meta.ContentType != "" {
			contentType = meta.ContentType
		}
	}

	return data, contentType, nil
}

// Delete implements store.ListingStore.Delete
// Returns store.ErrListingNotFound if no object is stored under name.
func (s *GridFSListingStore) Delete(ctx context.Context, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.deleteByName(ctx, name); err != nil {
		if !errors.Is(err, store.ErrListingNotFound) {
			log.Error("failed to delete listing object",
				slog.String("error", err.Error()),
				slog.String("name", name))
		}
		return err
	}

	log.Info("listing object deleted", slog.String("name", name))
	return nil
}

// deleteByName removes every file stored under the given name.
// Returns store.ErrListingNotFound when no file has that name.
func (s *GridFSListingStore) deleteByName(ctx context.Context, name string) error {
	cursor, err := s.bucket.Find(bson.M{"filename": name})
	if err != nil {
		return fmt.Errorf("failed to look up object %q: %w", name, err)
	}

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var file gridfsFile
		if err := cursor.Decode(&file); err != nil {
			continue
		}
		ids = append(ids, file.ID)
	}
	cursorErr := cursor.Err()
	if err := cursor.Close(ctx); err != nil && cursorErr == nil {
		cursorErr = err
	}
	if cursorErr != nil {
		return fmt.Errorf("failed to look up object %q: %w", name, cursorErr)
	}

	if len(ids) == 0 {
		return store.ErrListingNotFound
	}

	for _, id := range ids {
		if err := s.bucket.Delete(id); err != nil && !errors.Is(err, gridfs.ErrFileNotFound) {
			return fmt.Errorf("failed to delete object %q: %w", name, err)
		}
	}

	return nil
}
