package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"vanifolio/internal/config"
	"vanifolio/internal/faq"
	"vanifolio/internal/logger"
	"vanifolio/internal/metrics"
	"vanifolio/internal/validation"
)

// FAQHandler drives the "Ask me" widget.
type FAQHandler struct {
	matcher *faq.Matcher
	cfg     *config.Config
}

// NewFAQHandler creates a new FAQ widget handler.
func NewFAQHandler(matcher *faq.Matcher, cfg *config.Config) *FAQHandler {
	return &FAQHandler{matcher: matcher, cfg: cfg}
}

// Panel renders the widget for the current session state.
func (h *FAQHandler) Panel(c fiber.Ctx) error {
	page := currentPage(c)
	return h.render(c, loadWidget(c, h.matcher, page), page)
}

// Search runs a typed query. Blank input changes nothing.
func (h *FAQHandler) Search(c fiber.Ctx) error {
	raw := c.FormValue("q")
	page := currentPage(c)

	query, ok, msg := validation.ValidateQuery(raw)
	if !ok {
		if strings.TrimSpace(raw) == "" {
			return c.SendStatus(fiber.StatusNoContent)
		}
		if isHTMX(c) {
			return htmxError(c, msg)
		}
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	w := loadWidget(c, h.matcher, page)
	if err := w.Submit(query, page); err != nil {
		return err
	}
	h.record(c, w, page)

	return h.respond(c, w, page)
}

// Suggest runs one of the quick-suggestion prompts.
func (h *FAQHandler) Suggest(c fiber.Ctx) error {
	prompt := c.Query("prompt")
	page := currentPage(c)

	w := loadWidget(c, h.matcher, page)
	if err := w.Suggest(prompt, page); err != nil {
		if errors.Is(err, faq.ErrUnknownPrompt) {
			return fiber.NewError(fiber.StatusBadRequest, "Unknown suggestion")
		}
		return err
	}
	h.record(c, w, page)

	return h.respond(c, w, page)
}

// Toggle opens or closes the widget. The first open runs the default query.
func (h *FAQHandler) Toggle(c fiber.Ctx) error {
	page := currentPage(c)

	w := loadWidget(c, h.matcher, page)
	hadResults := w.Query() != ""
	w.Toggle(page)
	if w.IsOpen() && !hadResults {
		h.record(c, w, page)
	}

	return h.respond(c, w, page)
}

// Close hides the widget.
func (h *FAQHandler) Close(c fiber.Ctx) error {
	page := currentPage(c)

	w := loadWidget(c, h.matcher, page)
	w.Close()

	return h.respond(c, w, page)
}

func (h *FAQHandler) record(c fiber.Ctx, w *faq.Widget, page string) {
	resp, ok := w.Response()
	if !ok {
		return
	}
	logger.FromContext(c.Context()).Debug("faq search",
		zap.String("query", resp.Query),
		zap.String("page", page),
		zap.Bool("matched", resp.Matched),
	)
	metrics.RecordResponse(resp, page)
}

func (h *FAQHandler) respond(c fiber.Ctx, w *faq.Widget, page string) error {
	saveWidget(c, w)
	if isHTMX(c) {
		return h.render(c, w, page)
	}
	return redirectBack(c)
}

func (h *FAQHandler) render(c fiber.Ctx, w *faq.Widget, page string) error {
	return c.Render("partials/faq", newWidgetView(w, h.matcher.KnowledgeBase(), page), "")
}
