package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/webauth/internal/session"
)

func TestRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := session.NewRedisStore(client, time.Hour)
	ctx := context.Background()

	t.Run("missing session yields empty bag", func(t *testing.T) {
		bag, err := s.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, bag)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "sid-1", "user_id", "u-1"))
		require.NoError(t, s.Set(ctx, "sid-1", "csrf_token", "tok"))

		bag, err := s.Get(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, "u-1", bag["user_id"])
		assert.Equal(t, "tok", bag["csrf_token"])
	})

	t.Run("clear removes the bag", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "sid-2", "user_id", "u-2"))
		require.NoError(t, s.Clear(ctx, "sid-2"))

		bag, err := s.Get(ctx, "sid-2")
		require.NoError(t, err)
		assert.Empty(t, bag)
	})

	t.Run("sessions expire with the ttl", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "sid-3", "user_id", "u-3"))
		mr.FastForward(2 * time.Hour)

		bag, err := s.Get(ctx, "sid-3")
		require.NoError(t, err)
		assert.Empty(t, bag)
	})
}

func TestMemoryStore(t *testing.T) {
	s := session.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "sid", "k", "v"))

	bag, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "v", bag["k"])

	// Mutating the returned bag must not leak into the store.
	bag["k"] = "other"
	bag2, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "v", bag2["k"])

	require.NoError(t, s.Clear(ctx, "sid"))
	bag3, err := s.Get(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, bag3)
}
