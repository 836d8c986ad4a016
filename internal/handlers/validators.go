package handlers

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencyref", validCurrencyRef)
	}
}

// validCurrencyRef accepts either a 3-letter currency code or a currency UUID.
func validCurrencyRef(fl validator.FieldLevel) bool {
	ref := fl.Field().String()
	if len(ref) == 3 {
		for _, r := range ref {
			if !unicode.IsLetter(r) {
				return false
			}
		}
		return true
	}
	_, err := uuid.Parse(ref)
	return err == nil
}
