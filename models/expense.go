package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Known payment methods. The list is advisory: the store accepts any
// non-empty value, and records persisted before the paymentMethod field
// existed decode with [DefaultPaymentMethod].
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
	PaymentMethodOther    = "other"
)

// DefaultPaymentMethod is substituted when a decoded record carries no
// payment method.
const DefaultPaymentMethod = PaymentMethodCash

// Expense represents a single tracked expense record.
// It is the primary persistence model of the local store and the unit of
// synchronization with the remote collection.
type Expense struct {
	// ID is the globally unique record identifier, generated on the
	// client at creation time and immutable afterwards. The remote copy,
	// when it exists, is keyed by the same value.
	ID string `json:"id"`

	// Title is the short human-readable label of the expense.
	Title string `json:"title"`

	// Amount is the monetary value of the expense.
	Amount decimal.Decimal `json:"amount"`

	// Date is the moment the expense occurred.
	Date time.Time `json:"date"`

	// Category groups expenses for reporting (free-form).
	Category string `json:"category"`

	// PaymentMethod records how the expense was paid.
	PaymentMethod string `json:"paymentMethod"`

	// Description is an optional free-text note. An empty string means
	// the description is absent; it is omitted from serialized forms.
	Description string `json:"description,omitempty"`

	// Synced is true iff the last known local state of this record is
	// confirmed stored remotely.
	Synced bool `json:"synced"`
}

// WithSynced returns a copy of the expense with the sync flag set to v.
func (e Expense) WithSynced(v bool) Expense {
	e.Synced = v
	return e
}

// TableName returns the name of the local collection holding expenses.
func (e *Expense) TableName() string {
	return "expenses"
}
