package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordHistoryEntry is an append-only record of a credential a user has
// held. A reset may never reuse a hash matching the current credential or any
// entry here.
type PasswordHistoryEntry struct {
	ID           string
	UserID       string
	PasswordHash string
	CreatedAt    time.Time
}

// PasswordResetToken stores only the sha256 digest of the emailed token; the
// raw value never reaches the database. At most one live token exists per
// email address.
type PasswordResetToken struct {
	ID          string
	Email       string
	TokenDigest string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Expired reports whether the token's absolute expiry has passed.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
