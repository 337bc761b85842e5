// Package csrf issues and validates per-session anti-forgery tokens stored in
// the session bag.
package csrf

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"

	"github.com/avolkov/webauth/internal/session"
	"github.com/avolkov/webauth/pkg/constant"
)

type Guard struct {
	sessions session.Store
}

func NewGuard(sessions session.Store) *Guard {
	return &Guard{sessions: sessions}
}

// Issue generates a fresh token, stores it in the session and returns it for
// embedding in the next form or response. Calling Issue again rotates the
// token, which is how sensitive actions reduce replay value.
func (g *Guard) Issue(ctx context.Context, sid string) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}
	if err := g.sessions.Set(ctx, sid, constant.SessionKeyCSRF, token); err != nil {
		return "", err
	}
	return token, nil
}

// Validate reports whether submitted matches the session's current token. A
// missing session token or empty submission is a mismatch, never an error.
func (g *Guard) Validate(ctx context.Context, sid, submitted string) bool {
	if submitted == "" {
		return false
	}
	bag, err := g.sessions.Get(ctx, sid)
	if err != nil {
		return false
	}
	expected := bag[constant.SessionKeyCSRF]
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(submitted)) == 1
}

// GenerateToken returns a random token not bound to any session. Error
// responses that cannot reach the session store still carry one.
func GenerateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
