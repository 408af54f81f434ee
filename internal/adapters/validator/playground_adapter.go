package validator

import (
	"errors"
	"fmt"
	validatorPLatform "messenger/internal/platform/validator"
	"strings"

	"github.com/go-playground/validator/v10"
)

type playgroundValidator struct {
	validate *validator.Validate
}

func NewPlaygroundAdapter() validatorPLatform.Validator {
	return &playgroundValidator{
		validate: validator.New(),
	}
}

func (v *playgroundValidator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validatorPLatform.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validatorPLatform.FieldError{
					Field:   fieldPath(fe),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validatorPLatform.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

// fieldPath drops the root struct name and embedded BaseConfig segments,
// so Redis.Addr inside CacheConfig is reported as "redis.addr".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	out := parts[:0]
	for _, p := range parts {
		if p == "BaseConfig" {
			continue
		}
		out = append(out, strings.ToLower(p))
	}
	return strings.Join(out, ".")
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "This field must be a valid email address"
	case "hostname_port":
		return "This field must be a host:port address"
	case "oneof":
		return fmt.Sprintf("This field must be one of [%s]", e.Param())
	case "gt":
		return fmt.Sprintf("This field must be greater than %s", e.Param())
	case "gte", "min":
		return fmt.Sprintf("This field must be at least %s", e.Param())
	case "lte", "max":
		return fmt.Sprintf("This field must be at most %s", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}
