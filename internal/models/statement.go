package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MerchantInfo describes a merchant used to generate sample statements
type MerchantInfo struct {
	Name      string
	Category  string
	MinAmount float64
	MaxAmount float64
}

// StatementLine is a generated statement row before it is rendered as CSV
type StatementLine struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}
