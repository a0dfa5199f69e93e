package validation

import (
	"reflect"
	"strings"
	"sync"

	"finn-budget/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const maxGoalLength = 200

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimals validate as their string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("finn_category", validateCategory)
	_ = v.RegisterValidation("currency_amount", validateCurrencyAmount)
	_ = v.RegisterValidation("life_goal", validateLifeGoal)
	_ = v.RegisterValidation("risk_tolerance", validateRiskTolerance)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateCategory accepts the closed category set plus the budget-only lines
func validateCategory(fl validator.FieldLevel) bool {
	switch category := fl.Field().String(); category {
	case models.CategorySavings, models.CategoryInsurance:
		return true
	default:
		return models.IsValidCategory(category)
	}
}

// validateCurrencyAmount accepts non-negative amounts with at most 2 decimal
// places. It works on decimal.Decimal, floats and numeric strings.
func validateCurrencyAmount(fl validator.FieldLevel) bool {
	field := fl.Field()

	var amount decimal.Decimal
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		amount = decimal.NewFromFloat(field.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		amount = decimal.NewFromInt(field.Int())
	case reflect.String:
		parsed, err := decimal.NewFromString(field.String())
		if err != nil {
			return false
		}
		amount = parsed
	default:
		d, ok := field.Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		amount = d
	}

	if amount.IsNegative() {
		return false
	}
	return amount.Equal(amount.Round(2))
}

// validateLifeGoal rejects blank or overly long free-text goals
func validateLifeGoal(fl validator.FieldLevel) bool {
	goal := strings.TrimSpace(fl.Field().String())
	return goal != "" && len([]rune(goal)) <= maxGoalLength
}

func validateRiskTolerance(fl validator.FieldLevel) bool {
	return models.IsValidRiskTolerance(strings.ToLower(fl.Field().String()))
}
