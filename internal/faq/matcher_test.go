package faq

import (
	"errors"
	"reflect"
	"testing"
)

func ids(ranked []ScoredEntry) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Entry.ID
	}
	return out
}

func TestScore(t *testing.T) {
	entry := Entry{
		ID:       "case-study-3",
		Title:    "Case Study 3 — Direct Apply",
		Keywords: []string{"case study 3", "direct apply", "benefits portal", "soda"},
		Answer:   "answer",
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"no match", "xyzzy", 0},
		{"one keyword", "tell me about direct apply", 2},
		{"two keywords", "direct apply benefits portal", 4},
		{"keyword inside a word", "sodas", 2},
		{"title and keywords", "case study 3 — direct apply", 7},
		{"uppercase query is not lowercased by score", "DIRECT APPLY", 0},
		{"empty query", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.query, entry); got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestScore_KeywordAndTitleLowerBounds(t *testing.T) {
	for _, e := range Default().Entries() {
		for _, k := range e.Keywords {
			if got := Score("what about "+k+"?", e); got < keywordWeight {
				t.Errorf("%s: keyword %q scored %d, want >= %d", e.ID, k, got, keywordWeight)
			}
		}
	}

	title := Entry{ID: "t", Title: "Design process", Keywords: []string{"unrelated"}, Answer: "a"}
	if got := Score("design process", title); got < titleWeight {
		t.Errorf("title match scored %d, want >= %d", got, titleWeight)
	}

	both := Entry{ID: "b", Title: "Design process", Keywords: []string{"process"}, Answer: "a"}
	if got := Score("design process", both); got < keywordWeight+titleWeight {
		t.Errorf("title and keyword scored %d, want >= %d", got, keywordWeight+titleWeight)
	}
}

func TestRank_Scenarios(t *testing.T) {
	m := NewMatcher(Default())

	tests := []struct {
		name    string
		query   string
		wantTop string
		minTop  int
	}{
		{"doctor anywhere onboarding", "doctor anywhere onboarding", "case-study-1", 2},
		{"availability", "availability", "availability", 2},
		{"contact", "how do i contact you", "contact", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := m.Rank(tt.query)
			if len(ranked) == 0 {
				t.Fatalf("Rank(%q) returned nothing", tt.query)
			}
			if ranked[0].Entry.ID != tt.wantTop {
				t.Errorf("top = %q, want %q", ranked[0].Entry.ID, tt.wantTop)
			}
			if ranked[0].Score < tt.minTop {
				t.Errorf("top score = %d, want >= %d", ranked[0].Score, tt.minTop)
			}
		})
	}
}

func TestRank_NoMatch(t *testing.T) {
	m := NewMatcher(Default())

	ranked := m.Rank("xyzzy nonsense")
	if len(ranked) != 0 {
		t.Fatalf("expected no results, got %v", ids(ranked))
	}

	fallback := m.Fallback()
	got := make([]string, len(fallback))
	for i, e := range fallback {
		got[i] = e.ID
	}
	want := []string{"about", "availability", "case-study-1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fallback() = %v, want %v", got, want)
	}
}

func TestRank_TruncatesAndSorts(t *testing.T) {
	m := NewMatcher(Default())

	ranked := m.Rank("about availability onboarding direct apply process contact")
	if len(ranked) != MaxResults {
		t.Fatalf("expected %d results, got %d", MaxResults, len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("results not sorted: %d before %d", ranked[i-1].Score, ranked[i].Score)
		}
	}

	want := []string{"availability", "contact", "about"}
	if got := ids(ranked); !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	kb := MustNew([]Entry{
		{ID: "c", Title: "Gamma", Keywords: []string{"shared"}, Answer: "c"},
		{ID: "b", Title: "Beta", Keywords: []string{"shared"}, Answer: "b"},
		{ID: "a", Title: "Alpha", Keywords: []string{"shared", "extra"}, Answer: "a"},
		{ID: "d", Title: "Delta", Keywords: []string{"shared"}, Answer: "d"},
	}, Options{})
	m := NewMatcher(kb)

	want := []string{"a", "c", "b"}
	if got := ids(m.Rank("shared extra")); !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}

	want = []string{"c", "b", "a"}
	if got := ids(m.Rank("shared")); !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestRank_Idempotent(t *testing.T) {
	m := NewMatcher(Default())
	first := m.Rank("bio email open role")
	second := m.Rank("bio email open role")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Rank not idempotent: %v vs %v", first, second)
	}
}

func TestRank_EmptyKnowledgeBase(t *testing.T) {
	m := NewMatcher(MustNew(nil, Options{}))
	if ranked := m.Rank("anything"); len(ranked) != 0 {
		t.Errorf("expected empty result, got %v", ids(ranked))
	}
	if fallback := m.Fallback(); len(fallback) != 0 {
		t.Errorf("expected empty fallback, got %d entries", len(fallback))
	}
}

func TestSearch(t *testing.T) {
	m := NewMatcher(Default())

	t.Run("blank query", func(t *testing.T) {
		for _, q := range []string{"", "   ", "\t\n"} {
			if _, err := m.Search(q, HomePage); !errors.Is(err, ErrEmptyQuery) {
				t.Errorf("Search(%q) error = %v, want ErrEmptyQuery", q, err)
			}
		}
	})

	t.Run("query is lowercased", func(t *testing.T) {
		resp, err := m.Search("  Doctor Anywhere Onboarding  ", HomePage)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.Matched {
			t.Fatal("expected a match")
		}
		if resp.Query != "Doctor Anywhere Onboarding" {
			t.Errorf("Query = %q", resp.Query)
		}
		top := resp.Results[0]
		if top.ID != "case-study-1" {
			t.Errorf("top = %q, want case-study-1", top.ID)
		}
		if top.Target != "case-study-1.html" {
			t.Errorf("Target = %q, want case-study-1.html", top.Target)
		}
		if !top.Actionable() {
			t.Error("expected case study result to be actionable")
		}
		if resp.Notice != nil {
			t.Errorf("unexpected notice %+v", resp.Notice)
		}
	})

	t.Run("results without a destination", func(t *testing.T) {
		resp, err := m.Search("Availability", "case-study-3.html")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		top := resp.Results[0]
		if top.Target != "" || top.Actionable() {
			t.Errorf("availability should have no target, got %q", top.Target)
		}
		want := "I'm open to the right opportunities. You can reach me via the contact page or the email link in the footer. You are currently viewing Case Study 3."
		if top.Answer != want {
			t.Errorf("Answer = %q, want %q", top.Answer, want)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		resp, err := m.Search("xyzzy nonsense", HomePage)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Matched {
			t.Error("expected no match")
		}
		if resp.Notice == nil || resp.Notice.Title != "No exact match" {
			t.Fatalf("unexpected notice %+v", resp.Notice)
		}
		wantHint := "Try “Doctor Anywhere onboarding”, “Direct Apply”, or “Availability”."
		if resp.Notice.Hint != wantHint {
			t.Errorf("Hint = %q, want %q", resp.Notice.Hint, wantHint)
		}
		var got []string
		for _, r := range resp.Results {
			got = append(got, r.ID)
		}
		if !reflect.DeepEqual(got, []string{"about", "availability", "case-study-1"}) {
			t.Errorf("fallback results = %v", got)
		}
		if resp.Results[0].Target != "about.html" {
			t.Errorf("about target = %q", resp.Results[0].Target)
		}
	})
}

func TestHint(t *testing.T) {
	tests := []struct {
		suggestions []string
		want        string
	}{
		{[]string{"One"}, "Try “One”."},
		{[]string{"One", "Two"}, "Try “One” or “Two”."},
		{[]string{"One", "Two", "Three", "Four"}, "Try “One”, “Two”, “Three”, or “Four”."},
	}

	for _, tt := range tests {
		m := NewMatcher(MustNew(nil, Options{Suggestions: tt.suggestions}))
		if got := m.hint(); got != tt.want {
			t.Errorf("hint(%v) = %q, want %q", tt.suggestions, got, tt.want)
		}
	}
}
