package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bricamarket/brica-api/internal/api/shared"
	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/service"
	"github.com/bricamarket/brica-api/internal/store"
)

// maxUploadBytes bounds the multipart form memory for listing uploads.
const maxUploadBytes = 32 << 20 // 32 MiB

// ListingHandler handles listing-related API requests.
type ListingHandler struct {
	listingService service.ListingService
}

// NewListingHandler creates a new ListingHandler with the given dependencies.
func NewListingHandler(listingService service.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// Upload handles the /api/v1/upload endpoint.
// It expects a multipart form with a "file" part and the metadata fields
// name, price, seller and seller_email.
func (h *ListingHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(file)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}

	meta := domain.ListingMetadata{
		ItemName:    r.FormValue("name"),
		Price:       r.FormValue("price"),
		Seller:      r.FormValue("seller"),
		SellerEmail: r.FormValue("seller_email"),
	}

	listing, err := h.listingService.CreateListing(r.Context(), image, meta)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UploadResponse{
		OK:  true,
		URL: listing.URL,
	})
}

// Gallery handles the /api/v1/load-gallery endpoint.
func (h *ListingHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listingService.ListListings(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	items := make([]GalleryItem, 0, len(listings))
	for _, l := range listings {
		items = append(items, GalleryItem{
			Name:     l.Name,
			URL:      l.URL,
			ItemName: l.Metadata.ItemName,
			Price:    l.Metadata.Price,
			Seller:   l.Metadata.Seller,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GalleryResponse{
		OK:    true,
		Items: items,
	})
}

// Image handles the /api/v1/images/{name} endpoint, streaming the stored
// image bytes. This is the route under which object store URLs resolve.
func (h *ListingHandler) Image(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing image name")
		return
	}

	data, contentType, err := h.listingService.GetListingImage(r.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrListingNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Listing not found")
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Delete handles the /api/v1/delete/{id} endpoint.
// Deleting an absent listing is an error, not a no-op: clients get a 404.
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing listing id")
		return
	}

	if err := h.listingService.DeleteListing(r.Context(), id); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		OK:      true,
		Message: "Item deleted successfully",
	})
}
