package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"

	"vanifolio/internal/config"
	"vanifolio/internal/middleware"
	"vanifolio/internal/validation"
)

// Gate messages.
const (
	msgPasswordRequired  = "Password required to view this page."
	msgPasswordIncorrect = "Incorrect password. Please try again."
)

// GateHandler serves the case study password prompt.
type GateHandler struct {
	cfg *config.Config
}

// NewGateHandler creates a new gate handler.
func NewGateHandler(cfg *config.Config) *GateHandler {
	return &GateHandler{cfg: cfg}
}

// Show renders the password prompt for the pending page.
func (h *GateHandler) Show(c fiber.Ctx) error {
	next := validation.SafeRedirect(c.Query("next"))
	if !h.cfg.IsGateEnabled() || middleware.IsUnlocked(c) {
		return c.Redirect().To(next)
	}
	return h.render(c, fiber.StatusOK, next, c.Query("origin"), "")
}

// Submit checks the password, or handles the visitor dismissing the prompt.
// A visitor who landed on the protected page itself cannot dismiss it.
func (h *GateHandler) Submit(c fiber.Ctx) error {
	next := validation.SafeRedirect(c.FormValue("next"))
	origin := c.FormValue("origin")

	if !h.cfg.IsGateEnabled() {
		return c.Redirect().To(next)
	}

	if c.FormValue("action") == "dismiss" {
		if lockedInPlace(next, origin) {
			return h.render(c, fiber.StatusUnauthorized, next, origin, msgPasswordRequired)
		}
		return c.Redirect().To(validation.SafeRedirect(origin))
	}

	password := c.FormValue("password")
	if password == "" {
		return h.render(c, fiber.StatusUnauthorized, next, origin, msgPasswordRequired)
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.CaseStudyPassword)) != 1 {
		return h.render(c, fiber.StatusUnauthorized, next, origin, msgPasswordIncorrect)
	}

	if !middleware.Unlock(c) {
		return fiber.NewError(fiber.StatusInternalServerError, "Session unavailable")
	}
	return c.Redirect().To(next)
}

// lockedInPlace reports whether the prompt guards the page the visitor is
// already on, rather than a page they were navigating to.
func lockedInPlace(next, origin string) bool {
	return origin == "" || origin == next
}

func (h *GateHandler) render(c fiber.Ctx, status int, next, origin, message string) error {
	return c.Status(status).Render("gate", MergeBranding(fiber.Map{
		"Title":  "Password required",
		"Next":   next,
		"Origin": origin,
		"Locked": lockedInPlace(next, origin),
		"Error":  message,
	}, h.cfg))
}
