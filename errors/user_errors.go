// errors/user_errors.go
package errors

import "fmt"

var (
	ErrUserNotFound           = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrUserConflict           = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrInvalidUserData        = fmt.Errorf("%w: invalid user data", ErrInvalidInput)
	ErrInvalidCredentials     = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	ErrEmailNotConfirmed      = fmt.Errorf("%w: email not confirmed", ErrUnauthorized)
	ErrInvalidToken           = fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	ErrConfirmationNotFound   = fmt.Errorf("%w: unknown confirmation code", ErrNotFound)
	ErrResetTokenNotFound     = fmt.Errorf("%w: unknown password reset token", ErrNotFound)
	ErrResetTokenExpired      = fmt.Errorf("%w: password reset token expired", ErrInvalidInput)
	ErrResetTooSoon           = fmt.Errorf("%w: password reset requested too recently", ErrConflict)
	ErrResetAttemptsExhausted = fmt.Errorf("%w: too many password reset requests", ErrConflict)
)
