package web

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/go-petr/pet-payments/internal/domain"
)

// ValidScheme validates whether the payment scheme is supported.
var ValidScheme validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := domain.ParseScheme(s)
		return err == nil
	}

	return false
}

// ValidStatus validates whether the account status is supported.
var ValidStatus validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := domain.ParseStatus(s)
		return err == nil
	}

	return false
}

// RegisterValidators registers the custom binding tags on a gin validator engine.
func RegisterValidators(engine any) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return errors.New("unsupported validator engine")
	}

	if err := v.RegisterValidation("scheme", ValidScheme); err != nil {
		return err
	}

	return v.RegisterValidation("status", ValidStatus)
}

// GetErrorMsg returns a human readable suffix for the failed field validation.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " must be at least " + fe.Param() + " characters long"
	case "len":
		return " must be " + fe.Param() + " characters long"
	case "max":
		return " must be less than " + fe.Param()
	case "numeric":
		return " must contain digits only"
	case "scheme", "status":
		return " is not supported"
	}

	return " is invalid"
}

// BindingError turns a gin binding error into the message sent to the client.
func BindingError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return err.Error()
}
