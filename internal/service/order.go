package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=order.go -destination=mocks/order.go -package=mocks

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order to database
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order by id
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// GetOrdersByMemberID gets member orders
	GetOrdersByMemberID(ctx context.Context, memberID uuid.UUID) ([]models.Order, error)
}

// MemberGetter resolves the owning member of an order
type MemberGetter interface {
	GetMember(ctx context.Context, id uuid.UUID) (*models.Member, error)
}

// OrderService implements OrderService interface
type OrderService struct {
	repo    OrderRepository
	members MemberGetter
	clock   Clock
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, members MemberGetter, clock Clock) *OrderService {
	return &OrderService{
		repo:    repo,
		members: members,
		clock:   clock,
	}
}

// Create creates new order for member. Amount is normalized to two
// fractional digits, half-up. Creation time comes from a single clock
// reading.
func (os *OrderService) Create(ctx context.Context, memberID uuid.UUID, amount decimal.Decimal) (*models.Order, error) {
	member, err := os.members.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if amount.IsNegative() {
		return nil, models.ErrInvalidAmount
	}

	order := &models.Order{
		ID:        uuid.New(),
		MemberID:  member.ID,
		Amount:    amount.Round(2),
		Status:    models.OrderStatusCreated,
		CreatedAt: os.clock.Now(),
	}

	return os.repo.CreateOrder(ctx, order)
}

// GetOrder returns order by id
func (os *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return os.repo.GetOrderByID(ctx, id)
}

// ListMemberOrders returns list of member orders
func (os *OrderService) ListMemberOrders(ctx context.Context, memberID uuid.UUID) ([]models.Order, error) {
	if _, err := os.members.GetMember(ctx, memberID); err != nil {
		return nil, err
	}
	return os.repo.GetOrdersByMemberID(ctx, memberID)
}
