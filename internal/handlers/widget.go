package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"vanifolio/internal/faq"
)

// Session keys for the FAQ widget.
const (
	sessionFAQOpen  = "faq_open"
	sessionFAQQuery = "faq_query"
)

// WidgetView is the template data for the FAQ panel partial.
type WidgetView struct {
	Open        bool
	Query       string
	Response    *faq.Response
	Suggestions []string
	Page        string
}

// loadWidget restores the visitor's widget from the session.
func loadWidget(c fiber.Ctx, m *faq.Matcher, page string) *faq.Widget {
	sess := session.FromContext(c)
	if sess == nil {
		return faq.NewWidget(m)
	}
	open, _ := sess.Get(sessionFAQOpen).(bool)
	query, _ := sess.Get(sessionFAQQuery).(string)
	return faq.RestoreWidget(m, open, query, page)
}

// saveWidget persists the open flag and last query.
func saveWidget(c fiber.Ctx, w *faq.Widget) {
	sess := session.FromContext(c)
	if sess == nil {
		return
	}
	sess.Set(sessionFAQOpen, w.IsOpen())
	sess.Set(sessionFAQQuery, w.Query())
}

func newWidgetView(w *faq.Widget, kb *faq.KnowledgeBase, page string) WidgetView {
	view := WidgetView{
		Open:        w.IsOpen(),
		Query:       w.Query(),
		Suggestions: kb.Suggestions(),
		Page:        page,
	}
	if resp, ok := w.Response(); ok {
		view.Response = &resp
	}
	return view
}
