package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/luxtime/backend/internal/domain"
	"github.com/luxtime/backend/internal/service"
)

type Checkouter interface {
	Checkout(ctx context.Context, req service.CheckoutRequest) (*service.CheckoutResult, error)
}

type CheckoutHandler struct {
	checkout Checkouter
}

func NewCheckoutHandler(checkout Checkouter) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

type CheckoutRequestDTO struct {
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone string             `json:"customer_phone"`
	Items         []domain.OrderItem `json:"items"`
}

type CheckoutResponseDTO struct {
	OrderID  string  `json:"order_id"`
	Status   string  `json:"status"`
	Subtotal float64 `json:"subtotal"`
}

// POST /checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := h.checkout.Checkout(r.Context(), service.CheckoutRequest{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Items:         req.Items,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CheckoutResponseDTO{
		OrderID:  result.OrderID,
		Status:   result.Status,
		Subtotal: result.Subtotal,
	})
}
