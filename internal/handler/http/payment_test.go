package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/ordermart/ordermart/internal/handler/http/mocks"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandler_RequestPayment(t *testing.T) {
	orderID := uuid.New()
	paymentID := uuid.New()

	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService
		wantStatusCode int
	}{
		{
			name: "valid_request_return_200",
			body: `{"order_id":"` + orderID.String() + `","amount":42000.0,"method":"CARD"}`,
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Request(gomock.Any(), orderID, gomock.Any(), models.PaymentMethodCard).Return(&models.Payment{
					ID:      paymentID,
					OrderID: orderID,
					Amount:  decimal.RequireFromString("42000.00"),
					Method:  models.PaymentMethodCard,
					Status:  models.PaymentStatusRequested,
				}, nil)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "unknown_order_return_404",
			body: `{"order_id":"` + orderID.String() + `","amount":42000.0,"method":"CARD"}`,
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrOrderNotFound)
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "amount_mismatch_return_400",
			body: `{"order_id":"` + orderID.String() + `","amount":9999,"method":"CARD"}`,
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrAmountMismatch)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unsupported_method_return_400",
			body: `{"order_id":"` + orderID.String() + `","amount":42000.0,"method":"CASH_ON_DELIVERY"}`,
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "existing_payment_return_409",
			body: `{"order_id":"` + orderID.String() + `","amount":42000.0,"method":"CARD"}`,
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrPaymentExists)
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ph := NewPaymentHandler(tt.setup(t, ctrl))

			req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			ph.RequestPayment().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantStatusCode == http.StatusOK {
				var resp paymentResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

				want := paymentResponse{
					ID:      paymentID.String(),
					OrderID: orderID.String(),
					Status:  models.PaymentStatusRequested,
					Method:  models.PaymentMethodCard,
					Amount:  json.Number("42000.00"),
				}
				if diff := cmp.Diff(want, resp); diff != "" {
					t.Errorf("response mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestPaymentHandler_ApprovePayment(t *testing.T) {
	paymentID := uuid.New()
	orderID := uuid.New()
	approvedAt := time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		target         string
		setup          func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService
		wantStatusCode int
	}{
		{
			name:   "requested_payment_return_200",
			target: "/api/payments/" + paymentID.String() + "/approve",
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Approve(gomock.Any(), paymentID).Return(&models.Payment{
					ID:         paymentID,
					OrderID:    orderID,
					Amount:     decimal.RequireFromString("50000.00"),
					Method:     models.PaymentMethodCard,
					Status:     models.PaymentStatusApproved,
					ApprovedAt: &approvedAt,
				}, nil)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:   "already_processed_return_409",
			target: "/api/payments/" + paymentID.String() + "/approve",
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Approve(gomock.Any(), paymentID).Return(nil, models.ErrPaymentAlreadyProcessed)
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:   "unknown_payment_return_404",
			target: "/api/payments/" + paymentID.String() + "/approve",
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Approve(gomock.Any(), paymentID).Return(nil, models.ErrPaymentNotFound)
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "invalid_id_return_400",
			target: "/api/payments/not-a-uuid/approve",
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Approve(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ph := NewPaymentHandler(tt.setup(t, ctrl))

			router := chi.NewRouter()
			router.Post("/api/payments/{id}/approve", ph.ApprovePayment())

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantStatusCode == http.StatusOK {
				var resp paymentResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, models.PaymentStatusApproved, resp.Status)
				assert.Equal(t, "2025-10-03T12:00:00Z", resp.ApprovedAt)
			}
		})
	}
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	paymentID := uuid.New()
	orderID := uuid.New()

	tests := []struct {
		name           string
		setup          func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService
		wantStatusCode int
	}{
		{
			name: "existing_payment_return_200",
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().GetPayment(gomock.Any(), paymentID).Return(&models.Payment{
					ID:      paymentID,
					OrderID: orderID,
					Amount:  decimal.RequireFromString("42000.00"),
					Method:  models.PaymentMethodCard,
					Status:  models.PaymentStatusRequested,
				}, nil)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "unknown_payment_return_404",
			setup: func(t *testing.T, ctrl *gomock.Controller) *mocks.MockPaymentService {
				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().GetPayment(gomock.Any(), paymentID).Return(nil, models.ErrPaymentNotFound)
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ph := NewPaymentHandler(tt.setup(t, ctrl))

			router := chi.NewRouter()
			router.Get("/api/payments/{id}", ph.GetPayment())

			req := httptest.NewRequest(http.MethodGet, "/api/payments/"+paymentID.String(), nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantStatusCode == http.StatusOK {
				var resp paymentResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				// a requested payment has no approval time in the body
				assert.Empty(t, resp.ApprovedAt)
			}
		})
	}
}
