package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bricamarket/brica-api/internal/api/shared"
	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/service"
)

// CheckoutHandler handles the checkout API request.
type CheckoutHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler with the given dependencies.
func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

// Checkout handles the /api/v1/checkout endpoint.
// Notification delivery is best-effort; a valid request always succeeds
// with a fresh order identifier.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	order := domain.CheckoutOrder{
		Buyer: domain.Buyer{
			Name:  req.BuyerName,
			Email: req.BuyerEmail,
			Phone: req.BuyerPhone,
		},
		Items: make([]domain.CartItem, 0, len(req.CartItems)),
	}
	for _, item := range req.CartItems {
		order.Items = append(order.Items, domain.CartItem{
			ItemName:    item.ItemName,
			Price:       item.Price,
			Seller:      item.Seller,
			SellerEmail: item.SellerEmail,
		})
	}

	orderID, err := h.checkoutService.Checkout(r.Context(), order)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CheckoutResponse{
		OK:      true,
		Message: "Order placed! Sellers will contact you soon.",
		OrderID: orderID,
	})
}
