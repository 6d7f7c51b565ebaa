// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("time_period", validateTimePeriod)
		_ = v.RegisterValidation("risk_preference", validateRiskPreference)
		_ = v.RegisterValidation("budget_level", validateBudgetLevel)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateTimePeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "1month", "6months", "1year", "all":
		return true
	}
	return false
}

func validateRiskPreference(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "conservative", "moderate", "aggressive":
		return true
	}
	return false
}

func validateBudgetLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high":
		return true
	}
	return false
}
