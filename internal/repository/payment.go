package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/ordermart/ordermart/internal/repository/postgres"
)

const (
	insertPaymentQuery = `
						INSERT INTO payments (id, order_id, amount, method, status)
						VALUES ($1, $2, $3, $4, $5)
						RETURNING id, order_id, amount, method, status, approved_at
`
	selectPaymentByIDQuery = `
						SELECT id, order_id, amount, method, status, approved_at FROM payments
						WHERE id = $1
`
	approvePaymentQuery = `
						UPDATE payments
						SET status = $1, approved_at = $2
						WHERE id = $3 AND status = $4
`
	markOrderPaidQuery = `
						UPDATE orders
						SET status = $1
						WHERE id = $2
`
)

// PaymentRepository implements PaymentRepository interface
type PaymentRepository struct {
	db *postgres.DB
}

// NewPaymentRepository creates new PaymentRepository instance
func NewPaymentRepository(db *postgres.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePayment inserts new payment to database. The unique constraint on
// order_id rejects a second payment against the same order even when two
// requests race.
func (pr *PaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	err := pr.db.QueryRow(ctx, insertPaymentQuery, payment.ID, payment.OrderID, payment.Amount, payment.Method, payment.Status).Scan(&payment.ID, &payment.OrderID, &payment.Amount, &payment.Method, &payment.Status, &payment.ApprovedAt)
	if err != nil {
		if errCode := pr.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return payment, nil
}

// GetPaymentByID returns payment by id
func (pr *PaymentRepository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment := models.Payment{}
	err := pr.db.QueryRow(ctx, selectPaymentByIDQuery, id).Scan(&payment.ID, &payment.OrderID, &payment.Amount, &payment.Method, &payment.Status, &payment.ApprovedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// ApprovePayment persists payment approval and marks the linked order paid
// within one transaction. The payment update is guarded by status, so a
// payment that is no longer REQUESTED reports ErrPaymentAlreadyProcessed
// even if another approval committed after the caller's read.
func (pr *PaymentRepository) ApprovePayment(ctx context.Context, payment *models.Payment) error {
	tx, err := pr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, approvePaymentQuery, payment.Status, payment.ApprovedAt, payment.ID, models.PaymentStatusRequested)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrPaymentAlreadyProcessed
	}

	cmd, err = tx.Exec(ctx, markOrderPaidQuery, models.OrderStatusPaid, payment.OrderID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}

	return tx.Commit(ctx)
}
