package models

import "testing"

func TestNewQueryLog(t *testing.T) {
	a := NewQueryLog("availability", OutcomeMatched, "availability", "index.html")
	b := NewQueryLog("availability", OutcomeMatched, "availability", "index.html")

	if a.ID == b.ID {
		t.Error("expected unique ids")
	}
	if a.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if a.Outcome != OutcomeMatched || a.EntryID != "availability" || a.Page != "index.html" {
		t.Errorf("unexpected log %+v", a)
	}
}

func TestOutcomeConstants(t *testing.T) {
	if OutcomeMatched != "matched" {
		t.Errorf("OutcomeMatched = %q, want %q", OutcomeMatched, "matched")
	}
	if OutcomeFallback != "fallback" {
		t.Errorf("OutcomeFallback = %q, want %q", OutcomeFallback, "fallback")
	}
	if NoEntry != "none" {
		t.Errorf("NoEntry = %q, want %q", NoEntry, "none")
	}
}
