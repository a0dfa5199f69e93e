package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RiskToleranceConservative = "conservative"
	RiskToleranceModerate     = "moderate"
	RiskToleranceAggressive   = "aggressive"

	MaxProfileNameLength = 100
)

var (
	ErrProfileNameRequired  = errors.New("profile name is required")
	ErrProfileNameTooLong   = errors.New("profile name is too long")
	ErrNegativeIncome       = errors.New("monthly income cannot be negative")
	ErrNegativeSavings      = errors.New("savings cannot be negative")
	ErrInvalidRiskTolerance = errors.New("invalid risk tolerance")
)

// Profile is the financial profile collected by the onboarding conversation
type Profile struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Age           int             `gorm:"default:0" json:"age,omitempty"`
	MonthlyIncome decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"monthly_income"`
	Savings       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"savings"`
	HasDebt       bool            `gorm:"not null;default:false" json:"has_debt"`
	Dependents    int             `gorm:"not null;default:0" json:"dependents"`
	Location      string          `gorm:"type:varchar(100)" json:"location,omitempty"`
	RiskTolerance string          `gorm:"type:varchar(20);not null;default:'moderate'" json:"risk_tolerance"`
	Goals         []string        `gorm:"type:text;serializer:json" json:"goals,omitempty"`
	Preferences   Details         `gorm:"type:text" json:"preferences,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	if p.RiskTolerance == "" {
		p.RiskTolerance = RiskToleranceModerate
	}

	return p.Validate()
}

func (p *Profile) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

// Validate validates the profile fields
func (p *Profile) Validate() error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrProfileNameRequired
	}
	if len(name) > MaxProfileNameLength {
		return ErrProfileNameTooLong
	}
	if p.MonthlyIncome.IsNegative() {
		return ErrNegativeIncome
	}
	if p.Savings.IsNegative() {
		return ErrNegativeSavings
	}
	if p.RiskTolerance != "" && !IsValidRiskTolerance(p.RiskTolerance) {
		return ErrInvalidRiskTolerance
	}
	return nil
}

// HasKnownIncome reports whether the user supplied an income figure
func (p *Profile) HasKnownIncome() bool {
	return p != nil && p.MonthlyIncome.IsPositive()
}

// TableName returns the table name for Profile
func (p *Profile) TableName() string {
	return "profiles"
}

// IsValidRiskTolerance checks the risk tolerance value
func IsValidRiskTolerance(value string) bool {
	switch value {
	case RiskToleranceConservative, RiskToleranceModerate, RiskToleranceAggressive:
		return true
	default:
		return false
	}
}
