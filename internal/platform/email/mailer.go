// Package email provides SendGrid-backed delivery of checkout
// notifications, plus a log-only fallback for environments without an API
// key.
package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/platform/logger"
	"github.com/bricamarket/brica-api/internal/service"
)

// senderName is the display name on outgoing notifications.
const senderName = "Brica Market"

// SendGridMailer implements the service.Notifier interface using the
// SendGrid v3 mail send API.
type SendGridMailer struct {
	client *sendgrid.Client
	sender string
	logger *slog.Logger
}

// NewSendGridMailer creates a mailer that sends through SendGrid using the
// given API key and verified sender address. If log is nil, a default
// logger is used.
func NewSendGridMailer(apiKey, sender string, log *slog.Logger) *SendGridMailer {
	if log == nil {
		log = slog.Default()
	}

	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
		logger: log.With(slog.String("component", "sendgrid_mailer")),
	}
}

// Ensure SendGridMailer implements service.Notifier interface
var _ service.Notifier = (*SendGridMailer)(nil)

// NotifySeller implements service.Notifier.NotifySeller
func (m *SendGridMailer) NotifySeller(
	ctx context.Context,
	sellerEmail string,
	buyer domain.Buyer,
	item domain.CartItem,
) error {
	subject := fmt.Sprintf("Your item %q has a buyer", item.ItemName)
	plain := fmt.Sprintf(
		"%s wants to buy %q (price: %s).\n\nContact them at %s",
		buyer.Name, item.ItemName, item.Price, buyer.Email,
	)
	if buyer.Phone != "" {
		plain += fmt.Sprintf(" or %s", buyer.Phone)
	}
	plain += "."

	html := fmt.Sprintf(
		"<p><strong>%s</strong> wants to buy <strong>%s</strong> (price: %s).</p><p>Contact: %s %s</p>",
		buyer.Name, item.ItemName, item.Price, buyer.Email, buyer.Phone,
	)

	return m.send(ctx, sellerEmail, subject, plain, html)
}

// NotifyBuyer implements service.Notifier.NotifyBuyer
func (m *SendGridMailer) NotifyBuyer(
	ctx context.Context,
	order domain.CheckoutOrder,
	orderID string,
) error {
	subject := "Order placed"
	plain := fmt.Sprintf(
		"Hi %s,\n\nyour order %s with %d item(s) was placed. The sellers will contact you soon.",
		order.Buyer.Name, orderID, len(order.Items),
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>your order <strong>%s</strong> with %d item(s) was placed. The sellers will contact you soon.</p>",
		order.Buyer.Name, orderID, len(order.Items),
	)

	return m.send(ctx, order.Buyer.Email, subject, plain, html)
}

// send delivers a single email and treats any non-2xx provider response as
// an error.
func (m *SendGridMailer) send(ctx context.Context, to, subject, plain, html string) error {
	log := logger.FromContextOrDefault(ctx, m.logger)

	from := mail.NewEmail(senderName, m.sender)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plain, html)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("email provider rejected message: status %d", response.StatusCode)
	}

	log.Debug("email sent",
		slog.String("subject", subject),
		slog.Int("status_code", response.StatusCode))
	return nil
}
