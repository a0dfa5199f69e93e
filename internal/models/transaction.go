package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount      = errors.New("transaction amount must not be negative")
	ErrMissingDescription = errors.New("transaction description is required")
	ErrMissingDate        = errors.New("transaction date is required")
)

// Transaction is one normalized statement row. Amounts are always stored as
// absolute spend.
type Transaction struct {
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	MerchantName string          `json:"merchant_name,omitempty"`
	IsRecurring  bool            `json:"is_recurring"`

	// SyntheticDate is set when the row had no parseable date and Date was
	// filled with the processing day.
	SyntheticDate bool `json:"synthetic_date,omitempty"`
}

// MerchantKey returns the grouping key used by the merchant and recurrence passes
func (t *Transaction) MerchantKey() string {
	if name := strings.TrimSpace(t.MerchantName); name != "" {
		return name
	}
	return t.Description
}

// AmountFloat returns the amount for statistical calculations
func (t *Transaction) AmountFloat() float64 {
	return t.Amount.InexactFloat64()
}

// Day returns the transaction date truncated to a calendar day in UTC
func (t *Transaction) Day() time.Time {
	return TruncateToDay(t.Date)
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrMissingDescription
	}

	return nil
}

// TruncateToDay drops the clock part of a timestamp and moves it to UTC
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of calendar days from a to b
func DaysBetween(a, b time.Time) int {
	return int(TruncateToDay(b).Sub(TruncateToDay(a)).Hours() / 24)
}

// CloneTransactions returns a copy of the slice so annotations do not leak
// back into the caller's records
func CloneTransactions(transactions []Transaction) []Transaction {
	cloned := make([]Transaction, len(transactions))
	copy(cloned, transactions)
	return cloned
}
