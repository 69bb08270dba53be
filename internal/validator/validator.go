// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("event_kind", validateEventKind)
		_ = v.RegisterValidation("ledger_date", validateLedgerDate)
	}
}

func validateEventKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "PURCHASE", "SALE":
		return true
	}
	return false
}

// validateLedgerDate accepts calendar dates in "2006-01-02" form.
func validateLedgerDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
