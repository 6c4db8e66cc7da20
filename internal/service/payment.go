package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment.go -destination=mocks/payment.go -package=mocks

// PaymentRepository is interface for interacting with payment-related data
type PaymentRepository interface {
	// CreatePayment inserts new payment to database
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	// GetPaymentByID returns payment by id
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	// ApprovePayment persists payment approval and marks the order paid in one transaction
	ApprovePayment(ctx context.Context, payment *models.Payment) error
}

// OrderGetter resolves the order a payment is requested against
type OrderGetter interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

// PaymentService implements PaymentService interface
type PaymentService struct {
	repo   PaymentRepository
	orders OrderGetter
	clock  Clock
}

// NewPaymentService creates new PaymentService instance
func NewPaymentService(repo PaymentRepository, orders OrderGetter, clock Clock) *PaymentService {
	return &PaymentService{
		repo:   repo,
		orders: orders,
		clock:  clock,
	}
}

// Request creates payment for order in REQUESTED status. The normalized
// amount must equal the order's total amount. Exactly one payment may
// exist per order.
func (ps *PaymentService) Request(ctx context.Context, orderID uuid.UUID, amount decimal.Decimal, method string) (*models.Payment, error) {
	order, err := ps.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !amount.Round(2).Equal(order.Amount) {
		return nil, models.ErrAmountMismatch
	}

	payment := &models.Payment{
		ID:      uuid.New(),
		OrderID: order.ID,
		Amount:  amount.Round(2),
		Method:  method,
		Status:  models.PaymentStatusRequested,
	}

	payment, err = ps.repo.CreatePayment(ctx, payment)
	if err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return nil, models.ErrPaymentExists
		}
		return nil, err
	}

	return payment, nil
}

// Approve transitions payment from REQUESTED to APPROVED, stamps approval
// time and marks the linked order paid. Approving an already processed
// payment is an error, not a no-op.
func (ps *PaymentService) Approve(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment, err := ps.repo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payment.Status != models.PaymentStatusRequested {
		return nil, models.ErrPaymentAlreadyProcessed
	}

	now := ps.clock.Now()
	payment.Status = models.PaymentStatusApproved
	payment.ApprovedAt = &now

	if err := ps.repo.ApprovePayment(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// GetPayment returns payment by id
func (ps *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return ps.repo.GetPaymentByID(ctx, id)
}
