package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"vanifolio/internal/faq"
	"vanifolio/internal/validation"
)

// SessionGateUnlocked is the session key set once the visitor has entered
// the case study password.
const SessionGateUnlocked = "gate_unlocked"

// ProtectedPages reports which pages sit behind the password gate.
type ProtectedPages interface {
	IsProtected(name string) bool
}

// Gate locks protected pages until the session is unlocked.
type Gate struct {
	enabled bool
	pages   ProtectedPages
}

// NewGate creates the gate middleware. An empty password disables it.
func NewGate(password string, pages ProtectedPages) *Gate {
	return &Gate{enabled: password != "", pages: pages}
}

// Enabled reports whether the gate is active.
func (g *Gate) Enabled() bool {
	return g.enabled
}

// Protect redirects locked visitors of protected pages to /gate, carrying
// the requested page and the page they came from.
func (g *Gate) Protect(c fiber.Ctx) error {
	if !g.enabled {
		return c.Next()
	}

	page := faq.PageContext(c.Path())
	if !g.pages.IsProtected(page) || IsUnlocked(c) {
		return c.Next()
	}

	params := url.Values{}
	params.Set("next", "/"+page)
	if origin := validation.PathFromURL(c.Get("Referer")); origin != "" {
		params.Set("origin", origin)
	}

	return c.Redirect().To("/gate?" + params.Encode())
}

// IsUnlocked reports whether the current session has passed the gate.
func IsUnlocked(c fiber.Ctx) bool {
	sess := session.FromContext(c)
	if sess == nil {
		return false
	}
	unlocked, _ := sess.Get(SessionGateUnlocked).(bool)
	return unlocked
}

// Unlock marks the current session as having passed the gate.
func Unlock(c fiber.Ctx) bool {
	sess := session.FromContext(c)
	if sess == nil {
		return false
	}
	sess.Set(SessionGateUnlocked, true)
	return true
}
