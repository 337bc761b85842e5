package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/avolkov/webauth/internal/auth/domain"
)

// PgxIface is the slice of pgxpool.Pool the repository needs. pgxmock
// implements it, which keeps the SQL testable without a live database.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) CreateWithHistory(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO users_password_history (id, user_id, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), user.ID, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert password history: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) ListPasswordHistory(ctx context.Context, userID string) ([]domain.PasswordHistoryEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, password_hash, created_at
		FROM users_password_history
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list password history: %w", err)
	}
	defer rows.Close()

	var entries []domain.PasswordHistoryEntry
	for rows.Next() {
		var e domain.PasswordHistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.PasswordHash, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan password history: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) GetResetTokenByDigest(ctx context.Context, digest string) (*domain.PasswordResetToken, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, token_digest, expires_at, created_at
		FROM users_password_reset_tokens
		WHERE token_digest = $1
		LIMIT 1;
	`, digest)

	var token domain.PasswordResetToken
	err := row.Scan(&token.ID, &token.Email, &token.TokenDigest, &token.ExpiresAt, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}

	return &token, nil
}

func (r *PostgresRepository) ReplaceResetToken(ctx context.Context, token *domain.PasswordResetToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	// Single-live-token invariant: a new token always displaces prior ones.
	_, err = tx.Exec(ctx, `
		DELETE FROM users_password_reset_tokens WHERE email = $1
	`, token.Email)
	if err != nil {
		return fmt.Errorf("failed to delete prior reset tokens: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO users_password_reset_tokens (id, email, token_digest, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, token.ID, token.Email, token.TokenDigest, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reset token: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) DeleteResetTokenByDigest(ctx context.Context, digest string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM users_password_reset_tokens WHERE token_digest = $1
	`, digest)
	if err != nil {
		return fmt.Errorf("failed to delete reset token: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ConsumePasswordReset(ctx context.Context, email, userID, newHash string, now time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	_, err = tx.Exec(ctx, `
		DELETE FROM users_password_reset_tokens WHERE email = $1
	`, email)
	if err != nil {
		return fmt.Errorf("failed to delete reset tokens: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3
	`, newHash, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO users_password_history (id, user_id, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), userID, newHash, now)
	if err != nil {
		return fmt.Errorf("failed to append password history: %w", err)
	}

	return tx.Commit(ctx)
}
