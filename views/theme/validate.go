package theme

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// unsafeTokenChars would let a value escape its custom property declaration
// or the surrounding style element.
const unsafeTokenChars = ";{}<>\\\n\r"

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("csstoken", func(fl validator.FieldLevel) bool {
			return !strings.ContainsAny(fl.Field().String(), unsafeTokenChars)
		})
		validateInst = v
	})
	return validateInst
}

// Validate reports whether c is a complete theme whose tokens are safe to
// publish as CSS custom properties.
func Validate(c Config) error {
	return convertValidationError(validatorInstance().Struct(c))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		field := dottedFieldName(fe)
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "value is required"
		case "csstoken":
			msg = fmt.Sprintf("value %q contains characters not allowed in a style token", fe.Value())
		default:
			msg = fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
		}
		return &ValidationError{Field: field, Message: msg, Err: err}
	}

	return &ValidationError{Message: err.Error(), Err: err}
}

func dottedFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
