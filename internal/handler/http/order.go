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

//go:generate mockgen -source=order.go -destination=mocks/order.go -package=mocks

type OrderService interface {
	// Create creates new order for member
	Create(ctx context.Context, memberID uuid.UUID, amount decimal.Decimal) (*models.Order, error)
	// GetOrder returns order by id
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// ListMemberOrders returns list of member orders
	ListMemberOrders(ctx context.Context, memberID uuid.UUID) ([]models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type createOrderRequest struct {
	MemberID string           `json:"member_id"`
	Amount   *decimal.Decimal `json:"amount"`
}

type orderResponse struct {
	ID        string      `json:"id"`
	MemberID  string      `json:"member_id"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"created_at"`
	Amount    json.Number `json:"amount"`
}

// CreateOrder creates new order
// 200 — заказ создан;
// 400 — неверный формат запроса или отрицательная сумма;
// 404 — участник не найден;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		memberID, err := uuid.Parse(req.MemberID)
		if err != nil {
			http.Error(w, "invalid member id", http.StatusBadRequest)
			return
		}

		// a missing amount is invalid the same way a negative one is
		if req.Amount == nil {
			http.Error(w, "invalid amount", http.StatusBadRequest)
			return
		}

		order, err := oh.svc.Create(r.Context(), memberID, *req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrMemberNotFound):
				http.Error(w, "member not found", http.StatusNotFound)
			case errors.Is(err, models.ErrInvalidAmount):
				http.Error(w, "invalid amount", http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toOrderResponse(order)); err != nil {
			return
		}
	}
}

// GetOrder returns order by id
// 200 — успешная обработка запроса;
// 400 — неверный идентификатор;
// 404 — заказ не найден;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid order id", http.StatusBadRequest)
			return
		}

		order, err := oh.svc.GetOrder(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrOrderNotFound):
				http.Error(w, "order not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(toOrderResponse(order)); err != nil {
			return
		}
	}
}

// ListMemberOrders returns member orders
// 200 — успешная обработка запроса;
// 400 — неверный идентификатор;
// 404 — участник не найден;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) ListMemberOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "invalid member id", http.StatusBadRequest)
			return
		}

		orders, err := oh.svc.ListMemberOrders(r.Context(), memberID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrMemberNotFound):
				http.Error(w, "member not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		resp := []orderResponse{}
		for i := range orders {
			resp = append(resp, toOrderResponse(&orders[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resp); err != nil {
			return
		}
	}
}

func toOrderResponse(order *models.Order) orderResponse {
	return orderResponse{
		ID:        order.ID.String(),
		MemberID:  order.MemberID.String(),
		Status:    order.Status,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
		Amount:    json.Number(order.Amount.StringFixed(2)),
	}
}
