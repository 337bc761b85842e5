package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the auth flows. Handlers map these onto HTTP statuses;
// anything not listed here is treated as an internal error, logged in full and
// surfaced to the client as a generic message.
var (
	ErrInvalidCSRF        = errors.New("invalid csrf token")
	ErrTooManyRequests    = errors.New("too many attempts, try again later")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyInUse  = errors.New("unable to register with the given e-mail")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrResetTokenExpired  = errors.New("reset token has expired")
	ErrPasswordReused     = errors.New("previously used password, choose a new one")
	ErrWeakPassword       = errors.New("password does not meet the requirements")
)

// ValidationError marks missing or malformed request fields.
type ValidationError struct {
	msg string
}

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.msg
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
