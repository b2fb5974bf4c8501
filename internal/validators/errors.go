package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID            = errors.New("invalid expense id")
	ErrEmptyTitle           = errors.New("title is required")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrNegativeAmount       = errors.New("amount cannot be negative")
	ErrZeroDate             = errors.New("date is required")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
