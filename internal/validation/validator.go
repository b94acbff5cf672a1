package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "taskdeck/internal/errors"
)

// Validator implements echo.Validator over go-playground/validator. A failed
// validation becomes a 400 AppError whose details are an ordered list of
// {field, message} violations, using json tag names with a "body." prefix.
// Query and path parameters are checked by the pagination resolver and the
// handlers' id parsing, not here.
type Validator struct {
	validate *validator.Validate
}

// New builds the validator used for every request body shape.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	violations := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, apperrors.FieldError{
			Field:   "body." + fe.Field(),
			Message: messageFor(fe),
		})
	}
	return apperrors.BadRequest(violations)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	default:
		return fmt.Sprintf("Failed validation on '%s'", fe.Tag())
	}
}
