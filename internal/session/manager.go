package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Manager maps requests to session identifiers via a cookie, creating a fresh
// identifier when none is present.
type Manager struct {
	Store      Store
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(store Store, cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		Store:      store,
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

// SessionID returns the request's session identifier, issuing one (and the
// cookie carrying it) on first contact.
func (m *Manager) SessionID(c *fiber.Ctx) string {
	if sid := c.Cookies(m.cookieName); sid != "" {
		return sid
	}

	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    sid,
		Expires:  time.Now().Add(m.ttl),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return sid
}

// Destroy clears the server-side bag and expires the cookie.
func (m *Manager) Destroy(c *fiber.Ctx) error {
	sid := c.Cookies(m.cookieName)
	if sid == "" {
		return nil
	}
	if err := m.Store.Clear(c.Context(), sid); err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
