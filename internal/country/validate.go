package country

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidCountry = errors.New("invalid country record")

type ValidationError struct {
	Index   int    `json:"index"`
	ISO2    string `json:"iso2"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("countries[%d] (%s) %s: %s", v.Index, v.ISO2, v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %d error(s), first: %s", ErrInvalidCountry, len(v), v[0].Error())
}

func (v ValidationErrors) Unwrap() error {
	return ErrInvalidCountry
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks every record and collects all field errors. Records that
// reuse an ISO2 code are reported as well since lookups only see the first.
func (v *Validator) Validate(countries []Country) error {
	var errs ValidationErrors
	seen := make(map[string]int, len(countries))

	for i, c := range countries {
		if err := v.validate.Struct(c); err != nil {
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				return fmt.Errorf("%w: %v", ErrInvalidCountry, err)
			}
			for _, fe := range fieldErrs {
				errs = append(errs, ValidationError{
					Index:   i,
					ISO2:    c.ISO2,
					Field:   fe.Field(),
					Message: message(fe),
				})
			}
		}
		if first, dup := seen[c.ISO2]; dup && c.ISO2 != "" {
			errs = append(errs, ValidationError{
				Index:   i,
				ISO2:    c.ISO2,
				Field:   "ISO2",
				Message: fmt.Sprintf("duplicate of countries[%d]", first),
			})
			continue
		}
		seen[c.ISO2] = i
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "alpha":
		return "must contain only letters"
	case "number":
		return "must contain only digits"
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}
