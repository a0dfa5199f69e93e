package dto

import (
	"time"

	"finn-budget/internal/models"

	"github.com/shopspring/decimal"
)

// CreateProfileRequest represents the onboarding answers used to create a profile
type CreateProfileRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=100"`
	Age           int             `json:"age" validate:"omitempty,min=0,max=120"`
	MonthlyIncome decimal.Decimal `json:"monthly_income" validate:"currency_amount"`
	Savings       decimal.Decimal `json:"savings" validate:"currency_amount"`
	HasDebt       bool            `json:"has_debt"`
	Dependents    int             `json:"dependents" validate:"min=0,max=20"`
	Location      string          `json:"location" validate:"omitempty,max=100"`
	RiskTolerance string          `json:"risk_tolerance" validate:"omitempty,risk_tolerance"`
	Goals         []string        `json:"goals" validate:"omitempty,max=10,dive,life_goal"`
}

// ToModel converts the request into a new profile
func (r *CreateProfileRequest) ToModel() *models.Profile {
	return &models.Profile{
		Name:          r.Name,
		Age:           r.Age,
		MonthlyIncome: r.MonthlyIncome,
		Savings:       r.Savings,
		HasDebt:       r.HasDebt,
		Dependents:    r.Dependents,
		Location:      r.Location,
		RiskTolerance: r.RiskTolerance,
		Goals:         r.Goals,
	}
}

// UpdateProfileRequest represents a partial profile update; nil fields are left unchanged
type UpdateProfileRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Age           *int             `json:"age" validate:"omitempty,min=0,max=120"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income" validate:"omitempty,currency_amount"`
	Savings       *decimal.Decimal `json:"savings" validate:"omitempty,currency_amount"`
	HasDebt       *bool            `json:"has_debt"`
	Dependents    *int             `json:"dependents" validate:"omitempty,min=0,max=20"`
	Location      *string          `json:"location" validate:"omitempty,max=100"`
	RiskTolerance *string          `json:"risk_tolerance" validate:"omitempty,risk_tolerance"`
	Goals         []string         `json:"goals" validate:"omitempty,max=10,dive,life_goal"`
}

// Apply copies the non-nil fields onto the profile and returns the changed field names
func (r *UpdateProfileRequest) Apply(profile *models.Profile) map[string]interface{} {
	changes := make(map[string]interface{})

	if r.Name != nil && *r.Name != profile.Name {
		profile.Name = *r.Name
		changes["name"] = *r.Name
	}
	if r.Age != nil && *r.Age != profile.Age {
		profile.Age = *r.Age
		changes["age"] = *r.Age
	}
	if r.MonthlyIncome != nil && !r.MonthlyIncome.Equal(profile.MonthlyIncome) {
		profile.MonthlyIncome = *r.MonthlyIncome
		changes["monthly_income"] = r.MonthlyIncome.String()
	}
	if r.Savings != nil && !r.Savings.Equal(profile.Savings) {
		profile.Savings = *r.Savings
		changes["savings"] = r.Savings.String()
	}
	if r.HasDebt != nil && *r.HasDebt != profile.HasDebt {
		profile.HasDebt = *r.HasDebt
		changes["has_debt"] = *r.HasDebt
	}
	if r.Dependents != nil && *r.Dependents != profile.Dependents {
		profile.Dependents = *r.Dependents
		changes["dependents"] = *r.Dependents
	}
	if r.Location != nil && *r.Location != profile.Location {
		profile.Location = *r.Location
		changes["location"] = *r.Location
	}
	if r.RiskTolerance != nil && *r.RiskTolerance != profile.RiskTolerance {
		profile.RiskTolerance = *r.RiskTolerance
		changes["risk_tolerance"] = *r.RiskTolerance
	}
	if r.Goals != nil {
		profile.Goals = r.Goals
		changes["goals"] = len(r.Goals)
	}

	return changes
}

// CreateProfileResponse returns the new profile with its session token
type CreateProfileResponse struct {
	Profile      *models.Profile `json:"profile"`
	SessionToken string          `json:"session_token"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

// ActivityPage is a page of a profile's audit trail
type ActivityPage struct {
	Entries []*models.AuditLog `json:"entries"`
	Total   int64              `json:"total"`
	Offset  int                `json:"offset"`
	Limit   int                `json:"limit"`
}
