package service

import (
	"context"
	"time"

	"github.com/luxtime/backend/internal/domain"
	"github.com/luxtime/backend/internal/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []domain.OrderItem
}

type CheckoutResult struct {
	OrderID  string
	Status   string
	Subtotal float64
}

// CheckoutService persists simulated orders. Payment never actually runs,
// so every order is written with status "confirmed"; the other statuses
// exist only in the schema.
type CheckoutService struct {
	orders repository.OrderRepository
	logger zerolog.Logger
}

func NewCheckoutService(orders repository.OrderRepository, logger zerolog.Logger) *CheckoutService {
	return &CheckoutService{orders: orders, logger: logger}
}

// Checkout validates the cart, computes the subtotal server-side and
// persists one order record. It is deliberately not idempotent: identical
// payloads create independent orders.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	order := &domain.Order{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Items:         req.Items,
		Subtotal:      subtotal(req.Items),
		Status:        domain.OrderStatusConfirmed,
		CreatedAt:     time.Now(),
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	orderID, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to persist order")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", orderID).
		Float64("subtotal", order.Subtotal).
		Int("items", len(order.Items)).
		Msg("order confirmed")

	return &CheckoutResult{
		OrderID:  orderID,
		Status:   order.Status,
		Subtotal: order.Subtotal,
	}, nil
}

// subtotal sums price x quantity over the cart in decimal arithmetic and
// rounds half away from zero to 2 places, so float summation can never
// produce imprecise cents. The client-supplied total is never trusted.
func subtotal(items []domain.OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2).InexactFloat64()
}
