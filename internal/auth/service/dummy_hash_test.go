package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avolkov/webauth/config"
)

func TestFallbackDummyHashIsWellFormed(t *testing.T) {
	// The fallback must be a parseable bcrypt hash at the production work
	// factor, so the equalizing comparison still costs a full bcrypt round.
	cost, err := bcrypt.Cost([]byte(fallbackDummyHash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)

	err = bcrypt.CompareHashAndPassword([]byte(fallbackDummyHash), []byte("anything"))
	assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
}

func TestNewUserService_DummyHashAlwaysSet(t *testing.T) {
	s := NewUserService(nil, nil, nil, &config.Config{BcryptCost: bcrypt.MinCost})
	assert.NotEmpty(t, s.dummyHash)
}
