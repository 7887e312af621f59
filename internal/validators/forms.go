package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/techsolutions/horabank/models"
)

// formValidator validates the client's form structs via their struct
// tags, plus the cross-field rules tags cannot express.
type formValidator struct {
	v *validator.Validate
}

// NewFormValidator returns a [Validator] for the form structs in models:
// [models.LoginRequest], [models.RegisterForm], [models.TaskForm], and
// [models.ProfileUpdate]. Any other type fails with [ErrUnsupportedType].
func NewFormValidator() Validator {
	return &formValidator{v: validator.New()}
}

func (fv *formValidator) Validate(_ context.Context, input any) error {
	switch form := input.(type) {
	case models.LoginRequest, models.TaskForm, models.ProfileUpdate:
		return fv.structErrors(form)
	case models.RegisterForm:
		if err := fv.structErrors(form); err != nil {
			return err
		}
		if form.Password != form.ConfirmPassword {
			return ErrPasswordsDoNotMatch
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, input)
	}
}

func (fv *formValidator) structErrors(form any) error {
	err := fv.v.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// fieldError converts one tag failure into a form-footer message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
