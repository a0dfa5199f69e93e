package handlers

import (
	"finn-budget/internal/validation"

	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	rules *validation.Validator
}

// NewValidator returns the echo.Validator carrying Finn's field rules.
// Failures come back as validator.ValidationErrors for the error handler.
func NewValidator() echo.Validator {
	return requestValidator{rules: validation.GetValidator()}
}

func (v requestValidator) Validate(i interface{}) error {
	return v.rules.Struct(i)
}
