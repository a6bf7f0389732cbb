package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bricamarket/brica-api/internal/api"
	"github.com/bricamarket/brica-api/internal/mocks"
	"github.com/bricamarket/brica-api/internal/service"
)

func newCheckoutHandler(t *testing.T) (*api.CheckoutHandler, *mocks.MockNotifier) {
	t.Helper()
	notifier := mocks.NewMockNotifier()
	checkoutService, err := service.NewCheckoutService(notifier, nil)
	require.NoError(t, err)
	return api.NewCheckoutHandler(checkoutService), notifier
}

func TestCheckoutHandler(t *testing.T) {
	t.Parallel()

	t.Run("valid order", func(t *testing.T) {
		t.Parallel()
		handler, notifier := newCheckoutHandler(t)

		body := `{
			"buyer_name": "Bob Buyer",
			"buyer_email": "bob@example.com",
			"buyer_phone": "555-0100",
			"cart_items": [
				{"item_name": "Desk Lamp", "price": "15", "seller": "Alice", "seller_email": "alice@example.com"}
			]
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		handler.Checkout(rr, req)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var resp api.CheckoutResponse
		decodeBody(t, rr, &resp)
		assert.True(t, resp.OK)
		assert.Equal(t, "Order placed! Sellers will contact you soon.", resp.Message)

		_, err := uuid.Parse(resp.OrderID)
		assert.NoError(t, err, "order ID should be a UUID")

		require.Len(t, notifier.SellerNotifications, 1)
		assert.Equal(t, "alice@example.com", notifier.SellerNotifications[0].SellerEmail)
		require.Len(t, notifier.BuyerConfirmations, 1)
	})

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing buyer name",
			body: `{"buyer_email":"bob@example.com","cart_items":[{"item_name":"Lamp"}]}`,
		},
		{
			name: "invalid buyer email",
			body: `{"buyer_name":"Bob","buyer_email":"nope","cart_items":[{"item_name":"Lamp"}]}`,
		},
		{
			name: "empty cart",
			body: `{"buyer_name":"Bob","buyer_email":"bob@example.com","cart_items":[]}`,
		},
		{
			name: "malformed JSON",
			body: `{"buyer_name":`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			handler, notifier := newCheckoutHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.Checkout(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Empty(t, notifier.SellerNotifications)
		})
	}
}
