package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/ordermart/ordermart/internal/repository/postgres"
)

const (
	insertOrderQuery = `
						INSERT INTO orders (id, member_id, amount, status, created_at)
						VALUES ($1, $2, $3, $4, $5)
						RETURNING id, member_id, amount, status, created_at
`
	selectOrderByIDQuery = `
						SELECT id, member_id, amount, status, created_at FROM orders
						WHERE id = $1
`
	selectOrdersByMemberIDQuery = `
						SELECT id, member_id, amount, status, created_at FROM orders
						WHERE member_id = $1
						ORDER BY created_at DESC
`
)

// OrderRepository implements OrderRepository interface
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder inserts new order to database
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	err := or.db.QueryRow(ctx, insertOrderQuery, order.ID, order.MemberID, order.Amount, order.Status, order.CreatedAt).Scan(&order.ID, &order.MemberID, &order.Amount, &order.Status, &order.CreatedAt)
	if err != nil {
		if errCode := or.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return order, nil
}

// GetOrderByID returns order by id
func (or *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order := models.Order{}
	err := or.db.QueryRow(ctx, selectOrderByIDQuery, id).Scan(&order.ID, &order.MemberID, &order.Amount, &order.Status, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

// GetOrdersByMemberID gets member orders
func (or *OrderRepository) GetOrdersByMemberID(ctx context.Context, memberID uuid.UUID) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, selectOrdersByMemberIDQuery, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		err = rows.Scan(&order.ID, &order.MemberID, &order.Amount, &order.Status, &order.CreatedAt)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
