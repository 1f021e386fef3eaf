package config

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/layoutkit/internal/breakpoint"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	breakpointNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,15}$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("breakpoint_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			return name != breakpoint.UnknownName && breakpointNamePattern.MatchString(name)
		})

		validateInst = v
	})

	return validateInst
}
