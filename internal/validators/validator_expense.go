package validators

import (
	"context"

	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/shopspring/decimal"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldID targets the client-generated unique identifier of an expense.
	FieldID = "id"

	// FieldTitle targets the human-readable title of an expense.
	FieldTitle = "title"

	// FieldAmount targets the monetary amount of an expense.
	FieldAmount = "amount"

	// FieldDate targets the calendar date of an expense.
	FieldDate = "date"

	// FieldPaymentMethod targets the payment method of an expense.
	FieldPaymentMethod = "payment_method"
)

var allowedPaymentMethods = []string{
	models.PaymentMethodCash,
	models.PaymentMethodCard,
	models.PaymentMethodTransfer,
	models.PaymentMethodOther,
}

type ExpenseValidator struct {
}

func NewExpenseValidator() Validator {
	return &ExpenseValidator{}
}

func (v *ExpenseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Expense:
		return v.validateExpense(ctx, value, fields...)
	case *models.Expense:
		return v.validateExpense(ctx, *value, fields...)

	case models.ExpenseDocument:
		return v.validateDocument(ctx, value, fields...)
	case *models.ExpenseDocument:
		return v.validateDocument(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isAllowedPaymentMethod(method string) bool {
	for _, m := range allowedPaymentMethods {
		if method == m {
			return true
		}
	}
	return false
}

// validateExpense checks a fully materialized expense record. All payload
// defaults are expected to be applied by this point, so the payment method
// must be one of the allowed values.
func (v *ExpenseValidator) validateExpense(ctx context.Context, data models.Expense, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldAmount, FieldDate, FieldPaymentMethod}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if data.ID == "" {
				return ErrInvalidID
			}
		case FieldTitle:
			if data.Title == "" {
				return ErrEmptyTitle
			}
		case FieldAmount:
			if data.Amount.IsNegative() {
				return ErrNegativeAmount
			}
		case FieldDate:
			if data.Date.IsZero() {
				return ErrZeroDate
			}
		case FieldPaymentMethod:
			if !isAllowedPaymentMethod(data.PaymentMethod) {
				return ErrInvalidPaymentMethod
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDocument checks a wire document. Documents tolerate missing
// optional keys (amount, date, payment method) because older exports omit
// them; defaults are applied during conversion, not here. Present values
// must still be well formed.
func (v *ExpenseValidator) validateDocument(ctx context.Context, doc models.ExpenseDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldAmount, FieldDate, FieldPaymentMethod}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if doc.ID == "" {
				return ErrInvalidID
			}
		case FieldTitle:
			if doc.Title == "" {
				return ErrEmptyTitle
			}
		case FieldAmount:
			if doc.Amount == "" {
				continue
			}
			amount, err := decimal.NewFromString(doc.Amount.String())
			if err != nil {
				return ErrInvalidAmount
			}
			if amount.IsNegative() {
				return ErrNegativeAmount
			}
		case FieldDate:
			if doc.Date == "" {
				continue
			}
			if _, err := models.ParseISODate(doc.Date); err != nil {
				return ErrInvalidDate
			}
		case FieldPaymentMethod:
			if doc.PaymentMethod != "" && !isAllowedPaymentMethod(doc.PaymentMethod) {
				return ErrInvalidPaymentMethod
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
