package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/lumen/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("brand", func(fl validator.FieldLevel) bool {
			_, err := theme.Lookup(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
