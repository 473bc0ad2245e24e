package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,14}$`)

// RegisterValidations installs the custom binding rules on gin's validator
// engine. Called once at startup (and by handler tests).
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	}
}

// validationMessage converts a binding error into a message naming the first
// violated field
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request: " + err.Error()
	}

	fe := verrs[0]
	field := fe.Field()
	if field != "" {
		field = strings.ToLower(field[:1]) + field[1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "phone":
		return fmt.Sprintf("%q must be a valid phone number", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
