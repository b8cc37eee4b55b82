package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEncryptionUnavailable = fmt.Errorf("encryption service unavailable")
	ErrServerUnreachable     = fmt.Errorf("server unreachable")
	ErrLoginFailed           = fmt.Errorf("login rejected")
	ErrRegistrationFailed    = fmt.Errorf("registration rejected")
	ErrUsernameTooShort      = fmt.Errorf("username too short")
	ErrPasswordTooShort      = fmt.Errorf("password too short")
	ErrPasswordMismatch      = fmt.Errorf("password confirmation mismatch")
	ErrSendInFlight          = fmt.Errorf("message send already in progress")
	ErrNotAuthenticated      = fmt.Errorf("not authenticated")
)

// displayText is what a form shows for each user-facing sentinel.
var displayText = map[error]string{
	ErrEncryptionUnavailable: "Failed to connect to encryption service.",
	ErrServerUnreachable:     "Failed to connect to server.",
	ErrLoginFailed:           "Login failed.",
	ErrRegistrationFailed:    "Registration failed.",
	ErrUsernameTooShort:      "Username must be at least 3 characters long.",
	ErrPasswordTooShort:      "Password must be at least 6 characters long.",
	ErrPasswordMismatch:      "Passwords do not match.",
}

// Display returns the on-screen text for a sentinel, or err.Error() otherwise.
func Display(err error) string {
	if text, ok := displayText[err]; ok {
		return text
	}

	return err.Error()
}

// UserError is an error meant to be shown inline on a screen.
// Message is what the user sees, Err is the underlying cause.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func NewUserError(message string, cause error) *UserError {
	return &UserError{Message: message, Err: cause}
}

// UserMessage returns the inline message for err and whether err is user visible.
func UserMessage(err error) (string, bool) {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Message, true
	}

	return "", false
}
