package auth

import (
	"errors"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/Mobo140/vupp-cli/internal/errors"
	"github.com/Mobo140/vupp-cli/internal/model"
)

var validate = validator.New()

// Validate checks the registration form. Only the first failing rule is
// reported, in field order: username, password, confirmation.
func Validate(form model.Registration) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	switch fieldErrs[0].Field() {
	case "Username":
		return apperrors.ErrUsernameTooShort
	case "Password":
		return apperrors.ErrPasswordTooShort
	default:
		return apperrors.ErrPasswordMismatch
	}
}

type Strength string

const (
	StrengthNone   Strength = ""
	StrengthWeak   Strength = "Weak"
	StrengthMedium Strength = "Medium"
	StrengthStrong Strength = "Strong"
)

func PasswordStrength(password string) Strength {
	switch n := len([]rune(password)); {
	case n == 0:
		return StrengthNone
	case n < 6:
		return StrengthWeak
	case n < 10:
		return StrengthMedium
	default:
		return StrengthStrong
	}
}
