package email

import (
	"context"
	"log/slog"

	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/service"
)

// LogNotifier implements service.Notifier by logging instead of sending.
// It is used when no email API key is configured, which keeps checkout
// functional in development since sends are best-effort anyway.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that only logs.
// If log is nil, a default logger is used.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{logger: log.With(slog.String("component", "log_notifier"))}
}

// Ensure LogNotifier implements service.Notifier interface
var _ service.Notifier = (*LogNotifier)(nil)

// NotifySeller implements service.Notifier.NotifySeller
func (n *LogNotifier) NotifySeller(
	_ context.Context,
	sellerEmail string,
	buyer domain.Buyer,
	item domain.CartItem,
) error {
	n.logger.Info("seller notification (not sent: email disabled)",
		slog.String("seller_email", sellerEmail),
		slog.String("item_name", item.ItemName),
		slog.String("buyer_email", buyer.Email))
	return nil
}

// NotifyBuyer implements service.Notifier.NotifyBuyer
func (n *LogNotifier) NotifyBuyer(
	_ context.Context,
	order domain.CheckoutOrder,
	orderID string,
) error {
	n.logger.Info("buyer confirmation (not sent: email disabled)",
		slog.String("buyer_email", order.Buyer.Email),
		slog.String("order_id", orderID))
	return nil
}
