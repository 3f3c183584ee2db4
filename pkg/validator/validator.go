package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/suteetoe/employee-service/pkg/apperrors"
)

var phonePattern = regexp.MustCompile(`^[0-9\-\+\s\(\)]{3,20}$`)

// Validator validates input structs and reports failures per field.
type Validator struct {
	validate *validator.Validate
}

// validValuer is satisfied by enums that know their own domain.
type validValuer interface {
	Valid() bool
}

// New returns a validator with the "phone" and "department" rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their json name so forms and API clients can match them
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		if vv, ok := fl.Field().Interface().(validValuer); ok {
			return vv.Valid()
		}
		return false
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.Struct(i)
}

// Struct validates s and returns an *apperrors.AppError with code invalid
// listing every failing field.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrap(err, apperrors.CodeInvalid, "invalid input")
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return apperrors.Validation(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "phone":
		return "may contain only digits, spaces, +, -, ( and ) (3 to 20 characters)"
	case "department":
		return "must be one of HR, Finance, IT, Marketing, Sales, Operations, CustomerService, Engineering, Administration"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
