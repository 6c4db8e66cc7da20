package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//CREATED — заказ создан и ожидает оплаты;
//PAID — платёж по заказу подтверждён.

// order status
const (
	OrderStatusCreated = "CREATED"
	OrderStatusPaid    = "PAID"
)

// Order is order entity
type Order struct {
	ID        uuid.UUID
	MemberID  uuid.UUID
	Amount    decimal.Decimal
	Status    string
	CreatedAt time.Time
}

// MarkPaid transitions the order to PAID. Calling it on an already paid
// order is a no-op.
func (o *Order) MarkPaid() {
	if o.Status == OrderStatusPaid {
		return
	}
	o.Status = OrderStatusPaid
}
