package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vanifolio/internal/db"
	"vanifolio/internal/faq"
	"vanifolio/internal/handlers"
	"vanifolio/internal/handlers/api"
	"vanifolio/internal/middleware"
	"vanifolio/internal/pages"
)

// RegisterRoutes registers all application routes. database may be nil
// when query analytics are disabled.
func (s *Server) RegisterRoutes(site *pages.Site, kb *faq.KnowledgeBase, database *db.DB) {
	matcher := faq.NewMatcher(kb)

	// Initialize middleware
	gate := middleware.NewGate(s.Cfg.CaseStudyPassword, site)
	if gate.Enabled() {
		s.Logger.Info("case study password gate enabled")
	}

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(site, matcher, s.Cfg)
	faqHandler := handlers.NewFAQHandler(matcher, s.Cfg)
	gateHandler := handlers.NewGateHandler(s.Cfg)
	apiFAQHandler := api.NewFAQHandler(matcher)

	var pinger handlers.Pinger
	if database != nil {
		pinger = database
	}
	probeHandler := handlers.NewProbeHandler(pinger)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// FAQ widget
	s.App.Get("/faq", faqHandler.Panel)
	s.App.Post("/faq/search", faqHandler.Search)
	s.App.Get("/faq/suggest", faqHandler.Suggest)
	s.App.Post("/faq/toggle", faqHandler.Toggle)
	s.App.Post("/faq/close", faqHandler.Close)

	// JSON API
	s.App.Get("/api/faq/search", apiFAQHandler.Search)
	s.App.Get("/api/faq/entries", apiFAQHandler.Entries)

	// Password gate
	s.App.Get("/gate", gateHandler.Show)
	s.App.Post("/gate", gateHandler.Submit)

	// Pages - must be last (catch-all for page names)
	s.App.Get("/", pageHandler.Show)
	s.App.Get("/:page", gate.Protect, pageHandler.Show)
}
