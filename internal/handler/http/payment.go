package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment.go -destination=mocks/payment.go -package=mocks

type PaymentService interface {
	// Request creates payment for order in REQUESTED status
	Request(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal, method string) (*models.Payment, error)
	// Approve transitions payment from REQUESTED to APPROVED
	Approve(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	// GetPayment returns payment by id
	GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error)
}

// PaymentHandler represents HTTP handler for payment-related requests
type PaymentHandler struct {
	svc PaymentService
}

// NewPaymentHandler creates new PaymentHandler instance
func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type requestPaymentRequest struct {
	OrderID string           `json:"order_id"`
	Amount  *decimal.Decimal `json:"amount"`
	Method  string           `json:"method"`
}

type paymentResponse struct {
	ID         string      `json:"id"`
	OrderID    string      `json:"order_id"`
	Status     string      `json:"status"`
	Method     string      `json:"method"`
	Amount     json.Number `json:"amount"`
	ApprovedAt string      `json:"approved_at,omitempty"`
}

// RequestPayment creates payment for order
// 200 — платёж создан;
// 400 — неверный формат запроса, неизвестный метод оплаты или сумма не совпадает с суммой заказа;
// 404 — заказ не найден;
// 409 — для заказа уже существует платёж;
// 500 — внутренняя ошибка сервера.
func (ph *PaymentHandler) RequestPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req requestPaymentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		orderID, err := uuid.Parse(req.OrderID)
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		if req.Amount == nil {
			http.Error(w, "invalid amount", http.StatusBadRequest)
			return
		}

		method, err := models.ParsePaymentMethod(req.Method)
		if err != nil {
			http.Error(w, "unsupported payment method", http.StatusBadRequest)
			return
		}

		payment, err := ph.svc.Request(r.Context(), orderID, *req.Amount, method)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			case errors.Is(err, models.ErrAmountMismatch):
				http.Error(w, "payment amount must equal order amount", http.StatusBadRequest)
			case errors.Is(err, models.ErrPaymentExists):
				http.Error(w, "order already has a payment", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toPaymentResponse(payment)); err != nil {
			return
		}
	}
}

// ApprovePayment approves payment and marks the linked order paid
// 200 — платёж подтверждён;
// 400 — неверный идентификатор;
// 404 — платёж не найден;
// 409 — платёж уже обработан;
// 500 — внутренняя ошибка сервера.
func (ph *PaymentHandler) ApprovePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid payment id", http.StatusBadRequest)
			return
		}

		payment, err := ph.svc.Approve(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrPaymentNotFound):
				http.Error(w, "payment not found", http.StatusNotFound)
			case errors.Is(err, models.ErrPaymentAlreadyProcessed):
				http.Error(w, "payment already processed", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toPaymentResponse(payment)); err != nil {
			return
		}
	}
}

// GetPayment returns payment by id
// 200 — успешная обработка запроса;
// 400 — неверный идентификатор;
// 404 — платёж не найден;
// 500 — внутренняя ошибка сервера.
func (ph *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid payment id", http.StatusBadRequest)
			return
		}

		payment, err := ph.svc.GetPayment(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrPaymentNotFound):
				http.Error(w, "payment not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toPaymentResponse(payment)); err != nil {
			return
		}
	}
}

func toPaymentResponse(payment *models.Payment) paymentResponse {
	resp := paymentResponse{
		ID:      payment.ID.String(),
		OrderID: payment.OrderID.String(),
		Status:  payment.Status,
		Method:  payment.Method,
		Amount:  json.Number(payment.Amount.StringFixed(2)),
	}
	if payment.ApprovedAt != nil {
		resp.ApprovedAt = payment.ApprovedAt.Format(time.RFC3339)
	}
	return resp
}
