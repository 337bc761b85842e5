// Package mailer dispatches password-reset email. The auth flows only see the
// Mailer interface; failures decide whether a reset token may be persisted.
package mailer

import "context"

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/avolkov/webauth/internal/mailer Mailer

type Mailer interface {
	// SendPasswordResetEmail delivers the raw reset token to the address. The
	// token must not be persisted anywhere by implementations.
	SendPasswordResetEmail(ctx context.Context, email, token string) error
}
