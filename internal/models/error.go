package models

import "errors"

var (
	ErrConflictData            = errors.New("data conflicts with existing data")
	ErrMemberNotFound          = errors.New("member not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrEmailExists             = errors.New("email exists")
	ErrInvalidAmount           = errors.New("amount must be >= 0")
	ErrAmountMismatch          = errors.New("payment amount must equal order amount")
	ErrPaymentExists           = errors.New("order already has a payment")
	ErrPaymentAlreadyProcessed = errors.New("payment already processed")
	ErrInvalidPaymentMethod    = errors.New("unsupported payment method")
)
