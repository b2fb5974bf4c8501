// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validExpense() models.Expense {
	return models.Expense{
		ID:            "exp-1",
		Title:         "Groceries",
		Amount:        decimal.NewFromFloat(42.50),
		Date:          time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		Category:      "Food",
		PaymentMethod: models.PaymentMethodCard,
		Synced:        false,
	}
}

func validDocument() models.ExpenseDocument {
	return models.ExpenseDocument{
		ID:            "exp-1",
		Title:         "Groceries",
		Amount:        json.Number("42.50"),
		Date:          "2026-08-20T10:00:00Z",
		Category:      "Food",
		PaymentMethod: models.PaymentMethodCard,
		Synced:        true,
	}
}

// ---------------------------------------------------------------------------
// TestNewExpenseValidator
// ---------------------------------------------------------------------------

func TestNewExpenseValidator(t *testing.T) {
	v := NewExpenseValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewExpenseValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("Expense value", func(t *testing.T) {
		e := validExpense()
		err := v.Validate(ctx, e)
		require.NoError(t, err)
	})

	t.Run("Expense pointer", func(t *testing.T) {
		e := validExpense()
		err := v.Validate(ctx, &e)
		require.NoError(t, err)
	})

	t.Run("ExpenseDocument value", func(t *testing.T) {
		d := validDocument()
		err := v.Validate(ctx, d)
		require.NoError(t, err)
	})

	t.Run("ExpenseDocument pointer", func(t *testing.T) {
		d := validDocument()
		err := v.Validate(ctx, &d)
		require.NoError(t, err)
	})
}

// ---------------------------------------------------------------------------
// TestValidateExpense
// ---------------------------------------------------------------------------

func TestValidateExpense(t *testing.T) {
	v := NewExpenseValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		e := validExpense()
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("empty id", func(t *testing.T) {
		e := validExpense()
		e.ID = ""
		require.ErrorIs(t, v.Validate(ctx, e, FieldID), ErrInvalidID)
	})

	t.Run("empty title", func(t *testing.T) {
		e := validExpense()
		e.Title = ""
		require.ErrorIs(t, v.Validate(ctx, e, FieldTitle), ErrEmptyTitle)
	})

	t.Run("negative amount", func(t *testing.T) {
		e := validExpense()
		e.Amount = decimal.NewFromFloat(-0.01)
		require.ErrorIs(t, v.Validate(ctx, e, FieldAmount), ErrNegativeAmount)
	})

	t.Run("zero amount is valid", func(t *testing.T) {
		e := validExpense()
		e.Amount = decimal.Zero
		require.NoError(t, v.Validate(ctx, e, FieldAmount))
	})

	t.Run("zero date", func(t *testing.T) {
		e := validExpense()
		e.Date = time.Time{}
		require.ErrorIs(t, v.Validate(ctx, e, FieldDate), ErrZeroDate)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		e := validExpense()
		e.PaymentMethod = "barter"
		require.ErrorIs(t, v.Validate(ctx, e, FieldPaymentMethod), ErrInvalidPaymentMethod)
	})

	t.Run("empty payment method is rejected", func(t *testing.T) {
		// Defaults are applied before validation on the write path, so an
		// empty method reaching the validator is a programming error.
		e := validExpense()
		e.PaymentMethod = ""
		require.ErrorIs(t, v.Validate(ctx, e, FieldPaymentMethod), ErrInvalidPaymentMethod)
	})

	t.Run("all payment methods accepted", func(t *testing.T) {
		for _, m := range allowedPaymentMethods {
			e := validExpense()
			e.PaymentMethod = m
			require.NoError(t, v.Validate(ctx, e, FieldPaymentMethod), "method %q", m)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		e := validExpense()
		require.ErrorIs(t, v.Validate(ctx, e, "nonexistent"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateDocument
// ---------------------------------------------------------------------------

func TestValidateDocument(t *testing.T) {
	v := NewExpenseValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		d := validDocument()
		require.NoError(t, v.Validate(ctx, d))
	})

	t.Run("empty id", func(t *testing.T) {
		d := validDocument()
		d.ID = ""
		require.ErrorIs(t, v.Validate(ctx, d, FieldID), ErrInvalidID)
	})

	t.Run("empty title", func(t *testing.T) {
		d := validDocument()
		d.Title = ""
		require.ErrorIs(t, v.Validate(ctx, d, FieldTitle), ErrEmptyTitle)
	})

	t.Run("missing amount tolerated", func(t *testing.T) {
		d := validDocument()
		d.Amount = ""
		require.NoError(t, v.Validate(ctx, d, FieldAmount))
	})

	t.Run("unparseable amount", func(t *testing.T) {
		d := validDocument()
		d.Amount = json.Number("twelve")
		require.ErrorIs(t, v.Validate(ctx, d, FieldAmount), ErrInvalidAmount)
	})

	t.Run("negative amount", func(t *testing.T) {
		d := validDocument()
		d.Amount = json.Number("-5")
		require.ErrorIs(t, v.Validate(ctx, d, FieldAmount), ErrNegativeAmount)
	})

	t.Run("missing date tolerated", func(t *testing.T) {
		d := validDocument()
		d.Date = ""
		require.NoError(t, v.Validate(ctx, d, FieldDate))
	})

	t.Run("unparseable date", func(t *testing.T) {
		d := validDocument()
		d.Date = "yesterday"
		require.ErrorIs(t, v.Validate(ctx, d, FieldDate), ErrInvalidDate)
	})

	t.Run("zone-less date accepted", func(t *testing.T) {
		d := validDocument()
		d.Date = "2026-08-20T10:00:00"
		require.NoError(t, v.Validate(ctx, d, FieldDate))
	})

	t.Run("missing payment method tolerated", func(t *testing.T) {
		d := validDocument()
		d.PaymentMethod = ""
		require.NoError(t, v.Validate(ctx, d, FieldPaymentMethod))
	})

	t.Run("unknown payment method", func(t *testing.T) {
		d := validDocument()
		d.PaymentMethod = "barter"
		require.ErrorIs(t, v.Validate(ctx, d, FieldPaymentMethod), ErrInvalidPaymentMethod)
	})

	t.Run("unknown field", func(t *testing.T) {
		d := validDocument()
		require.ErrorIs(t, v.Validate(ctx, d, "nonexistent"), ErrUnknownField)
	})
}
