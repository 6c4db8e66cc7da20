package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//REQUESTED — платёж создан и ожидает подтверждения;
//APPROVED — платёж подтверждён, заказ оплачен.

// payment status
const (
	PaymentStatusRequested = "REQUESTED"
	PaymentStatusApproved  = "APPROVED"
)

// payment method
const (
	PaymentMethodCard           = "CARD"
	PaymentMethodTransfer       = "TRANSFER"
	PaymentMethodVirtualAccount = "VIRTUAL_ACCOUNT"
)

// Payment is payment entity
type Payment struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Amount     decimal.Decimal
	Method     string
	Status     string
	ApprovedAt *time.Time
}

// ParsePaymentMethod validates method against the closed set of supported
// payment methods.
func ParsePaymentMethod(method string) (string, error) {
	switch method {
	case PaymentMethodCard, PaymentMethodTransfer, PaymentMethodVirtualAccount:
		return method, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}
