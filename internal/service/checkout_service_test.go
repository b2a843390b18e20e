package service

import (
	"context"
	"testing"

	"github.com/luxtime/backend/internal/domain"
	"github.com/luxtime/backend/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockOrderRepository struct {
	created []*domain.Order
	ids     []string
	err     error
}

func (m *mockOrderRepository) Create(_ context.Context, o *domain.Order) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.created = append(m.created, o)
	id := primitive.NewObjectID().Hex()
	m.ids = append(m.ids, id)
	return id, nil
}

func checkoutRequest() CheckoutRequest {
	return CheckoutRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Items: []domain.OrderItem{
			{Slug: "submariner-date", Name: "Submariner Date", Price: 12999.0, Quantity: 1},
		},
	}
}

func TestCheckout_Success(t *testing.T) {
	repo := &mockOrderRepository{}
	svc := NewCheckoutService(repo, zerolog.Nop())

	result, err := svc.Checkout(context.Background(), checkoutRequest())
	require.NoError(t, err)

	assert.Equal(t, "confirmed", result.Status)
	assert.Equal(t, 12999.0, result.Subtotal)
	assert.NotEmpty(t, result.OrderID)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.Equal(t, "confirmed", stored.Status)
	assert.Equal(t, 12999.0, stored.Subtotal)
	assert.Equal(t, "Jane Doe", stored.CustomerName)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestCheckout_SubtotalIsExact(t *testing.T) {
	repo := &mockOrderRepository{}
	svc := NewCheckoutService(repo, zerolog.Nop())

	// 19.99 * 3 in raw float64 arithmetic is 59.970000000000006
	req := CheckoutRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Items: []domain.OrderItem{
			{Slug: "strap", Name: "Leather Strap", Price: 19.99, Quantity: 3},
		},
	}

	result, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 59.97, result.Subtotal)
}

func TestCheckout_SumsMultipleItems(t *testing.T) {
	repo := &mockOrderRepository{}
	svc := NewCheckoutService(repo, zerolog.Nop())

	req := checkoutRequest()
	req.Items = append(req.Items,
		domain.OrderItem{Slug: "gmt-master-ii", Name: "GMT-Master II", Price: 13999.0, Quantity: 2})

	result, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 12999.0+2*13999.0, result.Subtotal)
}

func TestCheckout_NotIdempotent(t *testing.T) {
	repo := &mockOrderRepository{}
	svc := NewCheckoutService(repo, zerolog.Nop())

	first, err := svc.Checkout(context.Background(), checkoutRequest())
	require.NoError(t, err)
	second, err := svc.Checkout(context.Background(), checkoutRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderID, second.OrderID)
	assert.Len(t, repo.created, 2)
}

func TestCheckout_InvalidQuantityRejectedBeforeStorage(t *testing.T) {
	repo := &mockOrderRepository{}
	svc := NewCheckoutService(repo, zerolog.Nop())

	req := checkoutRequest()
	req.Items[0].Quantity = 11

	_, err := svc.Checkout(context.Background(), req)
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Empty(t, repo.created)
}

func TestCheckout_StoreUnavailable(t *testing.T) {
	repo := &mockOrderRepository{err: repository.ErrUnavailable}
	svc := NewCheckoutService(repo, zerolog.Nop())

	_, err := svc.Checkout(context.Background(), checkoutRequest())
	assert.ErrorIs(t, err, repository.ErrUnavailable)
}

func TestCheckout_PhoneStoredWhenProvided(t *testing.T) {
	repo := &mockOrderRepository{}
	svc := NewCheckoutService(repo, zerolog.Nop())

	req := checkoutRequest()
	req.CustomerPhone = "+41 22 555 0101"

	_, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "+41 22 555 0101", repo.created[0].CustomerPhone)
}
