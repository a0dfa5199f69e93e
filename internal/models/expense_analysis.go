package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AnalysisSourceUpload = "upload"
	AnalysisSourceInline = "inline"
)

// ExpenseAnalysis is the persisted result of the latest analysis for a profile.
// A new run replaces the previous row for the same profile.
type ExpenseAnalysis struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ProfileID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"profile_id"`
	Source               string          `gorm:"type:varchar(20);not null" json:"source"`
	FileName             string          `gorm:"type:varchar(255)" json:"file_name,omitempty"`
	ArchiveURI           string          `gorm:"type:varchar(512)" json:"archive_uri,omitempty"`
	CategorizationSource string          `gorm:"type:varchar(20);not null" json:"categorization_source"`
	TransactionCount     int             `gorm:"not null" json:"transaction_count"`
	TotalExpenses        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_expenses"`
	Metadata             ExpenseMetadata `gorm:"type:text;serializer:json" json:"metadata"`
	AnalyzedAt           time.Time       `gorm:"not null;index" json:"analyzed_at"`
	CreatedAt            time.Time       `gorm:"not null" json:"created_at"`
}

func (a *ExpenseAnalysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.AnalyzedAt.IsZero() {
		a.AnalyzedAt = now
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	return nil
}

// TableName returns the table name for ExpenseAnalysis
func (a *ExpenseAnalysis) TableName() string {
	return "expense_analyses"
}
