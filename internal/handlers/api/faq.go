package api

import (
	"github.com/gofiber/fiber/v3"

	"vanifolio/internal/faq"
	"vanifolio/internal/metrics"
	"vanifolio/internal/models"
	"vanifolio/internal/validation"
)

// FAQHandler exposes the FAQ matcher as a JSON API.
type FAQHandler struct {
	matcher *faq.Matcher
}

// NewFAQHandler creates a new API FAQ handler.
func NewFAQHandler(matcher *faq.Matcher) *FAQHandler {
	return &FAQHandler{matcher: matcher}
}

// Search answers ?q= for the page given by ?page= (default: home).
func (h *FAQHandler) Search(c fiber.Ctx) error {
	query, ok, msg := validation.ValidateQuery(c.Query("q"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	page := faq.PageContext(c.Query("page"))
	if !validation.ValidatePage(page) {
		return jsonError(c, fiber.StatusBadRequest, "invalid page")
	}

	resp, err := h.matcher.Search(query, page)
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	metrics.RecordResponse(resp, page)

	return jsonSuccess(c, resp)
}

// Entries lists the knowledge base with each entry's navigation target.
func (h *FAQHandler) Entries(c fiber.Ctx) error {
	kb := h.matcher.KnowledgeBase()

	entries := make([]models.EntryResponse, 0, kb.Len())
	for _, e := range kb.Entries() {
		dest, _ := kb.Destination(e.ID)
		entries = append(entries, models.EntryResponse{
			ID:       e.ID,
			Title:    e.Title,
			Keywords: e.Keywords,
			Target:   dest.Page(),
		})
	}

	return jsonSuccess(c, entries)
}
