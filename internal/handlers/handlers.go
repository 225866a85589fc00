package handlers

import (
	"html"

	"github.com/gofiber/fiber/v3"

	"vanifolio/internal/faq"
	"vanifolio/internal/validation"
)

// htmxError returns an error message as HTML that HTMX will display.
// Uses 200 status so HTMX processes the swap (HTMX ignores non-2xx by default).
func htmxError(c fiber.Ctx, message string) error {
	return c.SendString(
		`<div class="faq-error" role="alert">` + html.EscapeString(message) + `</div>`,
	)
}

// isHTMX reports whether the request came from HTMX and wants a partial.
func isHTMX(c fiber.Ctx) bool {
	return c.Get("HX-Request") == "true"
}

// currentPage returns the page context the visitor is looking at: the
// HX-Current-URL header for HTMX requests, the Referer otherwise.
func currentPage(c fiber.Ctx) string {
	if path := validation.PathFromURL(c.Get("HX-Current-URL")); path != "" {
		return faq.PageContext(path)
	}
	return faq.PageContext(validation.PathFromURL(c.Get("Referer")))
}

// redirectBack sends a plain form post back to the page it came from.
func redirectBack(c fiber.Ctx) error {
	return c.Redirect().To(validation.SafeRedirect(validation.PathFromURL(c.Get("Referer"))))
}
