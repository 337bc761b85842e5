package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// TokenGenerator issues opaque reset tokens. The raw token is emailed and the
// database only ever sees its digest, so a database read does not disclose a
// usable token.
type TokenGenerator struct{}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

// Generate returns a URL-safe random token with 256 bits of entropy.
func (g *TokenGenerator) Generate() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Digest returns the sha256 hex digest used for at-rest storage and lookup.
func (g *TokenGenerator) Digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
