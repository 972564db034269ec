package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-accounts-service/models"
	"github.com/go-playground/validator/v10"
)

// JSON field names of [models.AccountRequest], used as keys of
// [ValidationError.Fields].
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldAddress     = "address"
	FieldPhoneNumber = "phone_number"
	FieldDateJoined  = "date_joined"
)

// AccountValidator checks account payloads against the validate struct
// tags of [models.AccountRequest].
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator constructs an AccountValidator. Field errors are
// reported under their JSON names.
func NewAccountValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &AccountValidator{validate: v}
}

// Validate accepts models.AccountRequest or a pointer to it.
func (v *AccountValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.AccountRequest:
		return v.validateAccountRequest(ctx, value)
	case *models.AccountRequest:
		if value == nil {
			return &ValidationError{Fields: map[string]string{"body": "request body is required"}}
		}
		return v.validateAccountRequest(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateAccountRequest(ctx context.Context, req models.AccountRequest) error {
	err := v.validate.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		if _, seen := out.Fields[fe.Field()]; !seen {
			out.Fields[fe.Field()] = validationErrorMessage(fe)
		}
	}

	return out
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "email":
		return "invalid email format"
	case "min":
		if err.Param() == "1" {
			return err.Field() + " must not be empty"
		}
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	default:
		return err.Field() + " is invalid"
	}
}
