package faq

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	valid := Entry{ID: "a", Title: "A", Keywords: []string{"a"}, Answer: "a"}

	tests := []struct {
		name    string
		entries []Entry
		opts    Options
	}{
		{"blank id", []Entry{{ID: " ", Title: "A", Answer: "a"}}, Options{}},
		{"duplicate id", []Entry{valid, valid}, Options{}},
		{"missing title", []Entry{{ID: "a", Answer: "a"}}, Options{}},
		{"missing answer", []Entry{{ID: "a", Title: "A"}}, Options{}},
		{
			"destination for unknown entry",
			[]Entry{valid},
			Options{Destinations: map[string]Destination{"b": DestinationAbout}},
		},
		{
			"unknown destination",
			[]Entry{valid},
			Options{Destinations: map[string]Destination{"a": Destination("blog")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries, tt.opts)
			if !errors.Is(err, ErrInvalidKnowledgeBase) {
				t.Errorf("New() error = %v, want ErrInvalidKnowledgeBase", err)
			}
		})
	}
}

func TestNew_NormalizesKeywords(t *testing.T) {
	kb, err := New([]Entry{{
		ID:       "a",
		Title:    "A",
		Keywords: []string{" Direct Apply ", "direct apply", "", "SODA"},
		Answer:   "a",
	}}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e, ok := kb.Get("a")
	if !ok {
		t.Fatal("entry a not found")
	}
	want := []string{"direct apply", "soda"}
	if !reflect.DeepEqual(e.Keywords, want) {
		t.Errorf("Keywords = %v, want %v", e.Keywords, want)
	}
}

func TestNew_Defaults(t *testing.T) {
	kb := MustNew(nil, Options{})
	if kb.DefaultQuery() != DefaultQuery {
		t.Errorf("DefaultQuery() = %q", kb.DefaultQuery())
	}
	if !reflect.DeepEqual(kb.Suggestions(), DefaultSuggestions) {
		t.Errorf("Suggestions() = %v", kb.Suggestions())
	}
	if !kb.IsSuggestion("Direct Apply") {
		t.Error("Direct Apply should be a suggestion")
	}
	if kb.IsSuggestion("direct apply") {
		t.Error("suggestions are matched exactly")
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	kb := Default()
	entries := kb.Entries()
	entries[0].ID = "changed"

	if e := kb.Entries()[0]; e.ID != "about" {
		t.Errorf("knowledge base mutated through Entries(): %q", e.ID)
	}
}

func TestDefault(t *testing.T) {
	kb := Default()

	var got []string
	for _, e := range kb.Entries() {
		got = append(got, e.ID)
	}
	want := []string{"about", "availability", "case-study-1", "case-study-3", "process", "contact"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}

	destinations := map[string]string{
		"about":        "about.html",
		"availability": "",
		"case-study-1": "case-study-1.html",
		"case-study-3": "case-study-3.html",
		"process":      "",
		"contact":      "contact.html",
	}
	for id, page := range destinations {
		d, ok := kb.Destination(id)
		if ok != (page != "") {
			t.Errorf("Destination(%q) ok = %v", id, ok)
		}
		if d.Page() != page {
			t.Errorf("Destination(%q).Page() = %q, want %q", id, d.Page(), page)
		}
	}
}

func TestParseDestination(t *testing.T) {
	for _, s := range []string{"", "case-study-1", "case-study-3", "contact", "about"} {
		if _, err := ParseDestination(s); err != nil {
			t.Errorf("ParseDestination(%q) error = %v", s, err)
		}
	}
	if _, err := ParseDestination("case-study-2"); err == nil {
		t.Error("expected error for unknown destination")
	}
}
