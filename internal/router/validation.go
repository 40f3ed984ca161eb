package router

import (
	"errors"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/family-meals/backend/internal/shopping"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// maxUnitNameLength is the maximum number of characters of a unit name.
const maxUnitNameLength = 32

var errValidatorEngine = errors.New("the binding validator is not a go-playground validator")

var validationsOnce sync.Once

// registerValidations registers the custom validation rules with gin's validator.
func registerValidations() error {
	var err error

	validationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errValidatorEngine
			return
		}

		err = v.RegisterValidation("unitname", validateUnitName)
	})

	return err
}

// validateUnitName checks that a unit name is not empty after normalization,
// is not too long and contains at least one letter.
func validateUnitName(fl validator.FieldLevel) bool {
	name := shopping.NormalizeUnit(fl.Field().String())
	if name == "" || utf8.RuneCountInString(name) > maxUnitNameLength {
		return false
	}

	for _, r := range name {
		if unicode.IsLetter(r) {
			return true
		}
	}

	return false
}
