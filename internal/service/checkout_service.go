package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/platform/logger"
)

// CheckoutService orchestrates checkout: it fans notifications out to the
// sellers of the cart items and confirms the order to the buyer.
type CheckoutService interface {
	// Checkout notifies each distinct seller and the buyer, best-effort,
	// and returns a freshly generated order identifier. The identifier is
	// not persisted and cannot later be looked up.
	Checkout(ctx context.Context, order domain.CheckoutOrder) (string, error)
}

// checkoutService is the default CheckoutService implementation.
type checkoutService struct {
	notifier Notifier
	logger   *slog.Logger
}

// NewCheckoutService creates a new CheckoutService with the given dependencies.
func NewCheckoutService(notifier Notifier, log *slog.Logger) (CheckoutService, error) {
	if notifier == nil {
		return nil, fmt.Errorf("notifier cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &checkoutService{
		notifier: notifier,
		logger:   log.With(slog.String("component", "checkout_service")),
	}, nil
}

// Checkout implements CheckoutService.Checkout
//
// Sellers are deduplicated by email: at most one notification goes to a
// seller address even when several cart items share it, and the
// notification references only the first item for that seller. That
// single-item body is intended behavior, not an aggregation bug. Items
// without a seller email are skipped. A failed send is logged and does not
// abort the remaining sends or the request, so Checkout succeeds regardless
// of how many notifications were actually delivered.
func (s *checkoutService) Checkout(ctx context.Context, order domain.CheckoutOrder) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	orderID := uuid.New().String()

	notified := make(map[string]bool)
	for _, item := range order.Items {
		sellerEmail := strings.TrimSpace(item.SellerEmail)
		if sellerEmail == "" {
			log.Debug("skipping cart item without seller email",
				slog.String("item_name", item.ItemName),
				slog.String("order_id", orderID))
			continue
		}
		if notified[sellerEmail] {
			continue
		}
		notified[sellerEmail] = true

		if err := s.notifier.NotifySeller(ctx, sellerEmail, order.Buyer, item); err != nil {
			log.Error("failed to notify seller",
				slog.String("error", err.Error()),
				slog.String("seller_email", sellerEmail),
				slog.String("order_id", orderID))
			continue
		}

		log.Info("seller notified",
			slog.String("seller_email", sellerEmail),
			slog.String("item_name", item.ItemName),
			slog.String("order_id", orderID))
	}

	if order.Buyer.Email != "" {
		if err := s.notifier.NotifyBuyer(ctx, order, orderID); err != nil {
			log.Error("failed to send buyer confirmation",
				slog.String("error", err.Error()),
				slog.String("order_id", orderID))
		}
	}

	log.Info("checkout completed",
		slog.String("order_id", orderID),
		slog.Int("cart_items", len(order.Items)),
		slog.Int("sellers_notified", len(notified)))

	return orderID, nil
}
