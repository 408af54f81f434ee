package validator

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", fe.Field, fe.Message)
}

// ValidationError collects every rule violated by one struct.
type ValidationError struct {
	Errors []FieldError
}

func (ve ValidationError) Error() string {
	errs := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		errs[i] = fe.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(errs, ", "))
}

func (ve ValidationError) Unwrap() []error {
	errs := make([]error, len(ve.Errors))
	for i, fe := range ve.Errors {
		errs[i] = fe
	}
	return errs
}

func (ve ValidationError) Field(path string) (FieldError, bool) {
	for _, fe := range ve.Errors {
		if fe.Field == path {
			return fe, true
		}
	}
	return FieldError{}, false
}

type Validator interface {
	Validate(s any) error
}
