package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/avolkov/webauth/internal/auth/domain UserRepository

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)

	// CreateWithHistory inserts the user and its first password-history entry
	// in one transaction.
	CreateWithHistory(ctx context.Context, user *User) error

	ListPasswordHistory(ctx context.Context, userID string) ([]PasswordHistoryEntry, error)

	GetResetTokenByDigest(ctx context.Context, digest string) (*PasswordResetToken, error)

	// ReplaceResetToken deletes any live tokens for the email and inserts the
	// new one in one transaction, keeping the single-live-token invariant.
	ReplaceResetToken(ctx context.Context, token *PasswordResetToken) error

	DeleteResetTokenByDigest(ctx context.Context, digest string) error

	// ConsumePasswordReset deletes all live tokens for the email, updates the
	// user's credential hash and appends a history entry in one transaction.
	ConsumePasswordReset(ctx context.Context, email, userID, newHash string, now time.Time) error
}
