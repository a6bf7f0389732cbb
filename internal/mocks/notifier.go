package mocks

import (
	"context"
	"sync"

	"github.com/bricamarket/brica-api/internal/domain"
	"github.com/bricamarket/brica-api/internal/service"
)

// SellerNotification records one NotifySeller call.
type SellerNotification struct {
	SellerEmail string
	Buyer       domain.Buyer
	Item        domain.CartItem
}

// MockNotifier implements service.Notifier for testing, recording every
// notification it is asked to send.
type MockNotifier struct {
	// Function fields for customizable behavior
	NotifySellerFn func(ctx context.Context, sellerEmail string, buyer domain.Buyer, item domain.CartItem) error
	NotifyBuyerFn  func(ctx context.Context, order domain.CheckoutOrder, orderID string) error

	// Errors returned by the default implementation
	SellerError error
	BuyerError  error

	mu                  sync.Mutex
	SellerNotifications []SellerNotification
	BuyerConfirmations  []string // order IDs
}

// NewMockNotifier creates a new mock notifier.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Ensure MockNotifier implements service.Notifier interface
var _ service.Notifier = (*MockNotifier)(nil)

// NotifySeller implements the Notifier interface
func (m *MockNotifier) NotifySeller(
	ctx context.Context,
	sellerEmail string,
	buyer domain.Buyer,
	item domain.CartItem,
) error {
	if m.NotifySellerFn != nil {
		return m.NotifySellerFn(ctx, sellerEmail, buyer, item)
	}

	if m.SellerError != nil {
		return m.SellerError
	}

	m.mu.Lock()
	m.SellerNotifications = append(m.SellerNotifications, SellerNotification{
		SellerEmail: sellerEmail,
		Buyer:       buyer,
		Item:        item,
	})
	m.mu.Unlock()
	return nil
}

// NotifyBuyer implements the Notifier interface
func (m *MockNotifier) NotifyBuyer(
	ctx context.Context,
	order domain.CheckoutOrder,
	orderID string,
) error {
	if m.NotifyBuyerFn != nil {
		return m.NotifyBuyerFn(ctx, order, orderID)
	}

	if m.BuyerError != nil {
		return m.BuyerError
	}

	m.mu.Lock()
	m.BuyerConfirmations = append(m.BuyerConfirmations, orderID)
	m.mu.Unlock()
	return nil
}
