package api_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bricamarket/brica-api/internal/api"
	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/mocks"
	"github.com/bricamarket/brica-api/internal/service"
)

var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

// newListingRouter mounts a ListingHandler the way the server router does,
// so URL parameters resolve in tests.
func newListingRouter(t *testing.T) (chi.Router, *mocks.MockListingStore) {
	t.Helper()

	listingStore := mocks.NewMockListingStore()
	listingService, err := service.NewListingService(listingStore, nil)
	require.NoError(t, err)
	handler := api.NewListingHandler(listingService)

	r := chi.NewRouter()
	r.Post("/upload", handler.Upload)
	r.Get("/load-gallery", handler.Gallery)
	r.Get("/images/{name}", handler.Image)
	r.Delete("/delete/{id}", handler.Delete)
	return r, listingStore
}

// multipartUpload builds a multipart request body with an optional file part
// and the given metadata fields.
func multipartUpload(t *testing.T, file []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if file != nil {
		part, err := writer.CreateFormFile("file", "item.png")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUpload(t *testing.T) {
	t.Parallel()

	t.Run("valid image upload", func(t *testing.T) {
		t.Parallel()
		router, listingStore := newListingRouter(t)

		body, contentType := multipartUpload(t, pngBytes, map[string]string{
			"name":         "Desk Lamp",
			"price":        "15",
			"seller":       "Alice",
			"seller_email": "alice@example.com",
		})
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var resp api.UploadResponse
		decodeBody(t, rr, &resp)
		assert.True(t, resp.OK)
		assert.NotEmpty(t, resp.URL)
		assert.Len(t, listingStore.Objects, 1)
	})

	t.Run("missing file part", func(t *testing.T) {
		t.Parallel()
		router, listingStore := newListingRouter(t)

		body, contentType := multipartUpload(t, nil, map[string]string{"name": "Desk Lamp"})
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "No file uploaded")
		assert.Empty(t, listingStore.Objects)
	})

	t.Run("non-multipart body", func(t *testing.T) {
		t.Parallel()
		router, _ := newListingRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "No file uploaded")
	})

	t.Run("unsupported file type", func(t *testing.T) {
		t.Parallel()
		router, listingStore := newListingRouter(t)

		body, contentType := multipartUpload(t, []byte("definitely not an image"), map[string]string{
			"name": "Desk Lamp",
		})
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "File must be JPEG or PNG")
		assert.Empty(t, listingStore.Objects)
	})
}

func TestGallery(t *testing.T) {
	t.Parallel()

	t.Run("empty gallery", func(t *testing.T) {
		t.Parallel()
		router, _ := newListingRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/load-gallery", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.GalleryResponse
		decodeBody(t, rr, &resp)
		assert.True(t, resp.OK)
		assert.Empty(t, resp.Items)
	})

	t.Run("gallery reflects uploads", func(t *testing.T) {
		t.Parallel()
		router, _ := newListingRouter(t)

		body, contentType := multipartUpload(t, pngBytes, map[string]string{
			"name":   "Desk Lamp",
			"price":  "15",
			"seller": "Alice",
		})
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest(http.MethodGet, "/load-gallery", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.GalleryResponse
		decodeBody(t, rr, &resp)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Desk Lamp", resp.Items[0].ItemName)
		assert.Equal(t, "15", resp.Items[0].Price)
		assert.Equal(t, "Alice", resp.Items[0].Seller)
		assert.NotEmpty(t, resp.Items[0].Name)
		assert.NotEmpty(t, resp.Items[0].URL)
	})

	t.Run("defaults for missing metadata", func(t *testing.T) {
		t.Parallel()
		router, _ := newListingRouter(t)

		body, contentType := multipartUpload(t, pngBytes, nil)
		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest(http.MethodGet, "/load-gallery", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		var resp api.GalleryResponse
		decodeBody(t, rr, &resp)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, domain.DefaultItemName, resp.Items[0].ItemName)
		assert.Equal(t, domain.DefaultPrice, resp.Items[0].Price)
		assert.Equal(t, domain.DefaultSeller, resp.Items[0].Seller)
	})
}

func TestImage(t *testing.T) {
	t.Parallel()
	router, listingStore := newListingRouter(t)

	listingStore.Objects["alice-abc.jpg"] = domain.Listing{
		Name:  "alice-abc.jpg",
		Image: pngBytes,
	}

	t.Run("existing image", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/images/alice-abc.jpg", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.ListingContentType, rr.Header().Get("Content-Type"))
		assert.Equal(t, pngBytes, rr.Body.Bytes())
	})

	t.Run("missing image", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/images/missing.jpg", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Listing not found")
	})
}

func TestDelete(t *testing.T) {
	t.Parallel()

	t.Run("existing listing", func(t *testing.T) {
		t.Parallel()
		router, listingStore := newListingRouter(t)
		listingStore.Objects["alice-abc.jpg"] = domain.Listing{Name: "alice-abc.jpg", Image: pngBytes}

		req := httptest.NewRequest(http.MethodDelete, "/delete/alice-abc.jpg", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Item deleted successfully")
		assert.Empty(t, listingStore.Objects)
	})

	t.Run("missing listing", func(t *testing.T) {
		t.Parallel()
		router, _ := newListingRouter(t)

		req := httptest.NewRequest(http.MethodDelete, "/delete/nope.jpg", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Listing not found")
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		router, listingStore := newListingRouter(t)
		listingStore.DeleteFn = func(ctx context.Context, name string) error {
			return context.DeadlineExceeded
		}

		req := httptest.NewRequest(http.MethodDelete, "/delete/alice-abc.jpg", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
