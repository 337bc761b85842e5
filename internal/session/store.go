// Package session treats the session as an opaque key-value bag keyed by a
// server-issued identifier. The identifier travels in a cookie; the bag lives
// in Redis (or in memory for tests).
package session

import "context"

type Store interface {
	// Get returns the bag for sid. A missing session yields an empty map, not
	// an error.
	Get(ctx context.Context, sid string) (map[string]string, error)

	Set(ctx context.Context, sid, key, value string) error

	// Clear removes the whole bag.
	Clear(ctx context.Context, sid string) error
}
