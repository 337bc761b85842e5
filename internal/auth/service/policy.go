package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/avolkov/webauth/config"
	autherror "github.com/avolkov/webauth/internal/errors"
)

// PasswordPolicy performs structural password-strength checks. Thresholds come
// from configuration, not from this package.
type PasswordPolicy struct {
	MinLength     int
	MaxLength     int
	RequireUpper  bool
	RequireLower  bool
	RequireDigit  bool
	RequireSymbol bool
}

func NewPasswordPolicy(cfg *config.Config) *PasswordPolicy {
	return &PasswordPolicy{
		MinLength:     cfg.PasswordMinLength,
		MaxLength:     cfg.PasswordMaxLength,
		RequireUpper:  cfg.RequireUppercase,
		RequireLower:  cfg.RequireLowercase,
		RequireDigit:  cfg.RequireDigit,
		RequireSymbol: cfg.RequireSymbol,
	}
}

// Validate returns ErrWeakPassword (wrapped with the requirement list) when
// the password fails the policy. The minimum counts runes; the maximum counts
// bytes, because that is the unit bcrypt caps at.
func (p *PasswordPolicy) Validate(password string) error {
	ok := len([]rune(password)) >= p.MinLength && (p.MaxLength == 0 || len(password) <= p.MaxLength)

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsSpace(r):
			hasSymbol = true
		}
	}

	if p.RequireUpper && !hasUpper {
		ok = false
	}
	if p.RequireLower && !hasLower {
		ok = false
	}
	if p.RequireDigit && !hasDigit {
		ok = false
	}
	if p.RequireSymbol && !hasSymbol {
		ok = false
	}

	if !ok {
		return fmt.Errorf("%w: %s", autherror.ErrWeakPassword, p.Describe())
	}
	return nil
}

// Describe renders the policy as a human-readable requirement list for error
// messages.
func (p *PasswordPolicy) Describe() string {
	parts := []string{fmt.Sprintf("at least %d characters", p.MinLength)}
	if p.RequireUpper {
		parts = append(parts, "an uppercase letter")
	}
	if p.RequireLower {
		parts = append(parts, "a lowercase letter")
	}
	if p.RequireDigit {
		parts = append(parts, "a digit")
	}
	if p.RequireSymbol {
		parts = append(parts, "a special character")
	}
	return "password must contain " + strings.Join(parts, ", ")
}
