package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"fleet_manager/internal/apperr"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match the payload the client sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Struct validates s and returns an apperr validation error describing the
// first violated rule, or nil.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperr.Validation(describe(fieldErrs[0]))
	}
	return apperr.Validation(err.Error())
}

func describe(fe validator.FieldError) string {
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "Required"
	case "email":
		msg = "Invalid email"
	case "min":
		msg = fmt.Sprintf("Must be at least %s characters long", fe.Param())
	case "max":
		msg = fmt.Sprintf("Must be at most %s characters long", fe.Param())
	case "gte":
		msg = fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		msg = fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "oneof":
		msg = "Invalid enum value. Expected " + strings.Join(quoted(strings.Fields(fe.Param())), " | ")
	case "datetime":
		msg = "Invalid date, expected format " + fe.Param()
	default:
		msg = "Invalid value"
	}
	return fe.Field() + ": " + msg
}

func quoted(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = "'" + v + "'"
	}
	return out
}
