package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/webauth/config"
	"github.com/avolkov/webauth/internal/auth/domain"
	"github.com/avolkov/webauth/internal/auth/dto"
	autherror "github.com/avolkov/webauth/internal/errors"
	"github.com/avolkov/webauth/internal/logging"
	"github.com/avolkov/webauth/internal/mailer"
)

// fallbackDummyHash is a valid cost-12 bcrypt hash used as timing ballast for
// unknown-address logins when hashing one at startup fails. Its plaintext is
// irrelevant; the comparison result is always discarded.
const fallbackDummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// UserService sequences the credential-lifecycle flows. HTTP concerns (CSRF,
// rate limiting, sessions, response shapes) stay in the handler; everything
// touching credentials, tokens and the store lives here.
type UserService struct {
	repo          domain.UserRepository
	hasher        *PasswordHasher
	policy        *PasswordPolicy
	tokens        *TokenGenerator
	mailer        mailer.Mailer
	log           logging.Logger
	resetTokenTTL time.Duration
	dummyHash     string
}

func NewUserService(repo domain.UserRepository, m mailer.Mailer, log logging.Logger, cfg *config.Config) *UserService {
	hasher := NewPasswordHasher(cfg.BcryptCost)

	// Compared against when a login targets an unknown address, so the miss
	// costs the same as a wrong password. If hashing itself fails, a
	// precomputed hash keeps the comparison real instead of a fast no-op.
	dummyHash, err := hasher.Hash(uuid.NewString())
	if err != nil {
		dummyHash = fallbackDummyHash
	}

	return &UserService{
		repo:          repo,
		hasher:        hasher,
		policy:        NewPasswordPolicy(cfg),
		tokens:        NewTokenGenerator(),
		mailer:        m,
		log:           log,
		resetTokenTTL: cfg.ResetTokenTTL,
		dummyHash:     dummyHash,
	}
}

// NormalizeEmail lowercases and validates an address so storage and lookup
// agree on one canonical form.
func NormalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return "", autherror.NewValidation("please enter a valid email")
	}
	return strings.ToLower(addr.Address), nil
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, autherror.NewValidation("please enter your name")
	}
	if input.Email == "" {
		return nil, autherror.NewValidation("please enter your email")
	}
	if input.Password == "" {
		return nil, autherror.NewValidation("please enter a password")
	}

	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	if err := s.policy.Validate(input.Password); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateWithHistory(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, autherror.NewValidation("please enter your email")
	}
	if input.Password == "" {
		return nil, autherror.NewValidation("please enter your password")
	}

	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	// Structural check before any store lookup: a password that cannot pass
	// the policy cannot be a stored credential either.
	if err := s.policy.Validate(input.Password); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// One error for both "no such user" and "wrong password" so the responses
	// are indistinguishable.
	if user == nil {
		_ = s.hasher.Verify(input.Password, s.dummyHash)
		return nil, autherror.ErrInvalidCredentials
	}
	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	return user, nil
}

// RequestPasswordReset issues a reset token for an existing account. The
// caller returns the same success response whether or not the account exists;
// nothing in the return value distinguishes the two. The token digest is only
// persisted after the email actually went out, so no unreachable-but-valid
// token is ever left behind.
func (s *UserService) RequestPasswordReset(ctx context.Context, input dto.ForgotPasswordInput) error {
	if input.Email == "" {
		return autherror.NewValidation("please enter your email")
	}

	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return err
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := s.tokens.Generate()
	if err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetEmail(ctx, email, token); err != nil {
		s.log.Error(ctx, "CRITICAL: failed to send password reset email, token was not saved",
			"email", email, "error", err)
		return nil
	}

	now := time.Now()
	resetToken := &domain.PasswordResetToken{
		ID:          uuid.NewString(),
		Email:       email,
		TokenDigest: s.tokens.Digest(token),
		ExpiresAt:   now.Add(s.resetTokenTTL),
		CreatedAt:   now,
	}

	if err := s.repo.ReplaceResetToken(ctx, resetToken); err != nil {
		// The generic success response already stands; the failure is an
		// operational problem, not the caller's.
		s.log.Error(ctx, "failed to save password reset token", "email", email, "error", err)
	}

	return nil
}

// ResetTokenStatus is the explicit outcome of a reset-link check, consumed by
// the handler to choose between rendering the form and redirecting away.
type ResetTokenStatus int

const (
	ResetTokenValid ResetTokenStatus = iota
	ResetTokenNotFound
	ResetTokenExpired
)

// CheckResetToken classifies the raw token from a reset link. Expired tokens
// are deleted on detection.
func (s *UserService) CheckResetToken(ctx context.Context, rawToken string) (ResetTokenStatus, error) {
	if rawToken == "" {
		return ResetTokenNotFound, nil
	}

	digest := s.tokens.Digest(rawToken)
	token, err := s.repo.GetResetTokenByDigest(ctx, digest)
	if err != nil {
		return ResetTokenNotFound, err
	}
	if token == nil {
		return ResetTokenNotFound, nil
	}

	if token.Expired(time.Now()) {
		if err := s.repo.DeleteResetTokenByDigest(ctx, digest); err != nil {
			s.log.Error(ctx, "failed to delete expired reset token", "error", err)
		}
		return ResetTokenExpired, nil
	}

	return ResetTokenValid, nil
}

func (s *UserService) ChangePassword(ctx context.Context, input dto.ChangePasswordInput) error {
	if input.Email == "" {
		return autherror.NewValidation("please enter your email")
	}
	if input.Password == "" {
		return autherror.NewValidation("please enter a password")
	}

	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return err
	}

	digest := s.tokens.Digest(input.Token)
	token, err := s.repo.GetResetTokenByDigest(ctx, digest)
	if err != nil {
		return err
	}

	// "Not found" and "belongs to another email" collapse into one error so
	// a stolen token cannot be used to probe for accounts.
	if token == nil || token.Email != email {
		return autherror.ErrInvalidResetToken
	}

	if token.Expired(time.Now()) {
		if err := s.repo.DeleteResetTokenByDigest(ctx, digest); err != nil {
			s.log.Error(ctx, "failed to delete expired reset token", "error", err)
		}
		return autherror.ErrResetTokenExpired
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrInvalidResetToken
	}

	if err := s.policy.Validate(input.Password); err != nil {
		return err
	}

	reused := s.hasher.Verify(input.Password, user.PasswordHash)
	if !reused {
		history, err := s.repo.ListPasswordHistory(ctx, user.ID)
		if err != nil {
			return err
		}
		for _, entry := range history {
			if s.hasher.Verify(input.Password, entry.PasswordHash) {
				reused = true
				break
			}
		}
	}
	if reused {
		return autherror.ErrPasswordReused
	}

	newHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return err
	}

	return s.repo.ConsumePasswordReset(ctx, email, user.ID, newHash, time.Now())
}
