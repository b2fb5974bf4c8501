package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseDocument is the flat wire form of an [Expense]: the JSON document
// stored in the remote collection and in the local store's doc column.
//
// The amount travels as a JSON number and the date as an ISO-8601 string.
// The description key is present only when non-empty; it is omitted, never
// null, when absent.
type ExpenseDocument struct {
	ID            string      `json:"_id"`
	Title         string      `json:"title"`
	Amount        json.Number `json:"amount"`
	Date          string      `json:"date"`
	Category      string      `json:"category"`
	PaymentMethod string      `json:"paymentMethod"`
	Synced        bool        `json:"synced"`
	Description   string      `json:"description,omitempty"`
}

// isoDateLayouts are the accepted date encodings, tried in order.
// The zone-less forms come from older exports and are read as UTC.
var isoDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISODate parses an ISO-8601 date string in any accepted layout.
// An empty input yields the zero time without error.
func ParseISODate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", s)
}

// FormatISODate renders t in the canonical wire encoding (RFC 3339, UTC).
func FormatISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// Document converts the expense to its wire form.
func (e Expense) Document() ExpenseDocument {
	return ExpenseDocument{
		ID:            e.ID,
		Title:         e.Title,
		Amount:        json.Number(e.Amount.String()),
		Date:          FormatISODate(e.Date),
		Category:      e.Category,
		PaymentMethod: e.PaymentMethod,
		Synced:        e.Synced,
		Description:   e.Description,
	}
}

// Expense converts the document back to the domain model.
//
// Decoding is tolerant of older documents: a missing amount reads as zero,
// a missing payment method defaults to [DefaultPaymentMethod], and a
// missing description stays absent.
func (d ExpenseDocument) Expense() (Expense, error) {
	amount := decimal.Zero
	if d.Amount != "" {
		parsed, err := decimal.NewFromString(d.Amount.String())
		if err != nil {
			return Expense{}, fmt.Errorf("invalid amount %q: %w", d.Amount, err)
		}
		amount = parsed
	}

	date, err := ParseISODate(d.Date)
	if err != nil {
		return Expense{}, err
	}

	method := d.PaymentMethod
	if method == "" {
		method = DefaultPaymentMethod
	}

	return Expense{
		ID:            d.ID,
		Title:         d.Title,
		Amount:        amount,
		Date:          date,
		Category:      d.Category,
		PaymentMethod: method,
		Description:   d.Description,
		Synced:        d.Synced,
	}, nil
}
