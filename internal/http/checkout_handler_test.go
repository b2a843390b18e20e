package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/luxtime/backend/internal/domain"
	"github.com/luxtime/backend/internal/repository"
	"github.com/luxtime/backend/internal/service"
)

// checkoutServiceMock runs the real validation and subtotal path against an
// in-memory order repository, so handler tests exercise the full request
// contract without a store.
type checkoutServiceMock struct {
	err error
}

func (m checkoutServiceMock) Checkout(ctx context.Context, req service.CheckoutRequest) (*service.CheckoutResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	svc := service.NewCheckoutService(&memoryOrderRepository{}, zerolog.Nop())
	return svc.Checkout(ctx, req)
}

type memoryOrderRepository struct {
	n int
}

func (m *memoryOrderRepository) Create(context.Context, *domain.Order) (string, error) {
	m.n++
	return "68f000000000000000000001", nil
}

type seederMock struct {
	inserted int
	err      error
}

func (m seederMock) Seed(context.Context) (int, error) {
	return m.inserted, m.err
}

func checkoutBody(quantity int) string {
	return fmt.Sprintf(`{
		"customer_name": "Jane Doe",
		"customer_email": "jane@example.com",
		"items": [{"slug": "submariner-date", "name": "Submariner Date", "price": 12999.0, "quantity": %d}]
	}`, quantity)
}

func postCheckout(t *testing.T, handler *CheckoutHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/checkout", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	handler.Checkout(recorder, request)
	return recorder
}

func TestCheckout_Success(t *testing.T) {
	handler := NewCheckoutHandler(checkoutServiceMock{})

	recorder := postCheckout(t, handler, checkoutBody(1))

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
	var resp CheckoutResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "confirmed" {
		t.Errorf("Expected status 'confirmed', got '%s'", resp.Status)
	}
	if resp.Subtotal != 12999.0 {
		t.Errorf("Expected subtotal 12999.0, got %f", resp.Subtotal)
	}
	if resp.OrderID == "" {
		t.Errorf("Expected non-empty order_id")
	}
}

func TestCheckout_QuantityBounds(t *testing.T) {
	handler := NewCheckoutHandler(checkoutServiceMock{})

	for _, quantity := range []int{1, 10} {
		recorder := postCheckout(t, handler, checkoutBody(quantity))
		if recorder.Code != http.StatusOK {
			t.Errorf("quantity %d: expected status %d, got %d", quantity, http.StatusOK, recorder.Code)
		}
	}

	for _, quantity := range []int{0, 11} {
		recorder := postCheckout(t, handler, checkoutBody(quantity))
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("quantity %d: expected status %d, got %d", quantity, http.StatusBadRequest, recorder.Code)
		}
		var errResp ErrorResponse
		if err := json.NewDecoder(recorder.Body).Decode(&errResp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if errResp.Code != "validation_error" {
			t.Errorf("quantity %d: expected code 'validation_error', got '%s'", quantity, errResp.Code)
		}
		if !strings.Contains(errResp.Details, "quantity") {
			t.Errorf("quantity %d: expected details to name the field, got '%s'", quantity, errResp.Details)
		}
	}
}

func TestCheckout_InvalidJSON(t *testing.T) {
	handler := NewCheckoutHandler(checkoutServiceMock{})

	recorder := postCheckout(t, handler, "{not json")

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestCheckout_StoreUnavailable(t *testing.T) {
	handler := NewCheckoutHandler(checkoutServiceMock{err: repository.ErrUnavailable})

	recorder := postCheckout(t, handler, checkoutBody(1))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status code %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}

func TestSeedEndpoint(t *testing.T) {
	handler := NewSeedHandler(seederMock{inserted: 5})

	recorder := httptest.NewRecorder()
	handler.Seed(recorder, httptest.NewRequest("POST", "/seed", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}
	var resp SeedResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Inserted != 5 {
		t.Errorf("Expected 5 inserted, got %d", resp.Inserted)
	}
}

func TestSeedEndpoint_StoreUnavailable(t *testing.T) {
	handler := NewSeedHandler(seederMock{err: repository.ErrUnavailable})

	recorder := httptest.NewRecorder()
	handler.Seed(recorder, httptest.NewRequest("POST", "/seed", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status code %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
	var errResp ErrorResponse
	if err := json.NewDecoder(recorder.Body).Decode(&errResp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if errResp.Error != "Database not configured" {
		t.Errorf("Expected error 'Database not configured', got '%s'", errResp.Error)
	}
}
