package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"vanifolio/internal/config"
	"vanifolio/internal/faq"
	"vanifolio/internal/pages"
	"vanifolio/internal/validation"
)

// PageHandler renders the portfolio pages.
type PageHandler struct {
	site    *pages.Site
	matcher *faq.Matcher
	cfg     *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(site *pages.Site, matcher *faq.Matcher, cfg *config.Config) *PageHandler {
	return &PageHandler{site: site, matcher: matcher, cfg: cfg}
}

// Show renders the page named by the request path, with the FAQ widget in
// its session state.
func (h *PageHandler) Show(c fiber.Ctx) error {
	name := faq.PageContext(c.Path())
	if !validation.ValidatePage(name) {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	}

	page, err := h.site.Get(name)
	if err != nil {
		if errors.Is(err, pages.ErrPageNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Page not found")
		}
		return err
	}

	w := loadWidget(c, h.matcher, name)

	return c.Render("page", MergeBranding(fiber.Map{
		"Title":       page.Title,
		"Page":        page,
		"CurrentPage": name,
		"FAQ":         newWidgetView(w, h.matcher.KnowledgeBase(), name),
	}, h.cfg))
}
