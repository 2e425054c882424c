package order

import "errors"

// Failure kinds surfaced by the transaction engine. Every failure rolls the
// enclosing transaction back before it is returned, so callers never observe
// partial state.
var (
	ErrEmptyOrder             = errors.New("order has no line items")
	ErrInvalidQuantityOrPrice = errors.New("quantity must be positive and unit price non-negative")
	ErrInsufficientPayment    = errors.New("amount tendered is less than the total")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrInvalidPayment         = errors.New("payment amount must be positive")
	ErrOverpayment            = errors.New("payment amount exceeds outstanding balance")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already assigned")
	ErrNotFound               = errors.New("record not found")
)
