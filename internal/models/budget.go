package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetSourceLLM      = "llm"
	BudgetSourceTemplate = "template"
)

var (
	ErrBudgetEmpty           = errors.New("budget has no allocations")
	ErrBudgetPercentageTotal = errors.New("budget percentages must sum to 100")
)

var oneHundred = decimal.NewFromInt(100)

// BudgetAllocation is one category line of a monthly budget
type BudgetAllocation struct {
	Category   string          `json:"category"`
	Percentage decimal.Decimal `json:"percentage"`
	Amount     decimal.Decimal `json:"amount"`
	Note       string          `json:"note,omitempty"`
}

// Budget is a generated monthly budget for a profile
type Budget struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ProfileID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"profile_id"`
	Source          string             `gorm:"type:varchar(20);not null" json:"source"`
	MonthlyIncome   decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"monthly_income"`
	Allocations     []BudgetAllocation `gorm:"type:text;serializer:json" json:"allocations"`
	Recommendations []string           `gorm:"type:text;serializer:json" json:"recommendations"`
	Summary         string             `gorm:"type:text" json:"summary,omitempty"`
	CreatedAt       time.Time          `gorm:"not null;index" json:"created_at"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return b.Validate()
}

// Validate checks that the allocations cover exactly 100% of income
func (b *Budget) Validate() error {
	if len(b.Allocations) == 0 {
		return ErrBudgetEmpty
	}

	if total := b.TotalPercentage(); !total.Equal(oneHundred) {
		return fmt.Errorf("%w: got %s", ErrBudgetPercentageTotal, total.String())
	}

	return nil
}

// TotalPercentage sums the allocation percentages
func (b *Budget) TotalPercentage() decimal.Decimal {
	total := decimal.Zero
	for _, allocation := range b.Allocations {
		total = total.Add(allocation.Percentage)
	}
	return total
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}
