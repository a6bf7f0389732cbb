package service

import (
	"context"

	"github.com/bricamarket/brica-api/internal/domain"
)

// Notifier sends checkout notifications. Sends are fire-and-forget from the
// orchestrator's perspective: no delivery confirmation is consumed and no
// send is retried.
type Notifier interface {
	// NotifySeller emails a seller that one of their items was ordered,
	// including the buyer's contact details and the triggering item.
	NotifySeller(ctx context.Context, sellerEmail string, buyer domain.Buyer, item domain.CartItem) error

	// NotifyBuyer emails the buyer a confirmation for the given order.
	NotifyBuyer(ctx context.Context, order domain.CheckoutOrder, orderID string) error
}
