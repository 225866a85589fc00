// Package faq implements the keyword matcher behind the portfolio's
// "Ask me" widget.
package faq

import (
	"fmt"
	"strings"
)

// Entry is one topic in the knowledge base.
type Entry struct {
	ID       string
	Title    string
	Keywords []string
	Answer   string
}

// KnowledgeBase is the fixed, ordered set of entries the matcher ranks.
// It is built once at startup and never mutated.
type KnowledgeBase struct {
	entries      []Entry
	destinations map[string]Destination
	suggestions  []string
	defaultQuery string
}

// Options carries the optional parts of a knowledge base.
type Options struct {
	// Destinations maps entry ids to navigation targets. Ids left out have
	// no target.
	Destinations map[string]Destination
	// Suggestions are the quick prompts offered under the search box.
	Suggestions []string
	// DefaultQuery runs the first time the widget opens without a query.
	DefaultQuery string
}

// DefaultSuggestions are the quick prompts shown under the search box.
var DefaultSuggestions = []string{
	"Doctor Anywhere onboarding",
	"Direct Apply",
	"Availability",
}

// DefaultQuery is the query run the first time the widget opens.
const DefaultQuery = "Doctor Anywhere onboarding"

// New validates entries and returns an immutable knowledge base.
// Keywords are trimmed, lowercased and de-duplicated; blank keywords are
// dropped.
func New(entries []Entry, opts Options) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{
		entries:      make([]Entry, 0, len(entries)),
		destinations: make(map[string]Destination, len(opts.Destinations)),
		suggestions:  opts.Suggestions,
		defaultQuery: opts.DefaultQuery,
	}
	if len(kb.suggestions) == 0 {
		kb.suggestions = DefaultSuggestions
	}
	kb.suggestions = append([]string(nil), kb.suggestions...)
	if strings.TrimSpace(kb.defaultQuery) == "" {
		kb.defaultQuery = DefaultQuery
	}

	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		e.ID = strings.TrimSpace(e.ID)
		switch {
		case e.ID == "":
			return nil, fmt.Errorf("%w: entry %d has no id", ErrInvalidKnowledgeBase, i)
		case seen[e.ID]:
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidKnowledgeBase, e.ID)
		case strings.TrimSpace(e.Title) == "":
			return nil, fmt.Errorf("%w: entry %q has no title", ErrInvalidKnowledgeBase, e.ID)
		case strings.TrimSpace(e.Answer) == "":
			return nil, fmt.Errorf("%w: entry %q has no answer", ErrInvalidKnowledgeBase, e.ID)
		}
		seen[e.ID] = true
		e.Keywords = normalizeKeywords(e.Keywords)
		kb.entries = append(kb.entries, e)
	}

	for id, dest := range opts.Destinations {
		if !seen[id] {
			return nil, fmt.Errorf("%w: destination for unknown entry %q", ErrInvalidKnowledgeBase, id)
		}
		if !dest.Valid() {
			return nil, fmt.Errorf("%w: entry %q has unknown destination %q", ErrInvalidKnowledgeBase, id, dest)
		}
		if dest != NoDestination {
			kb.destinations[id] = dest
		}
	}

	return kb, nil
}

// MustNew is New for knowledge bases compiled into the binary.
func MustNew(entries []Entry, opts Options) *KnowledgeBase {
	kb, err := New(entries, opts)
	if err != nil {
		panic(err)
	}
	return kb
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Entries returns a copy of the entries in source order.
func (kb *KnowledgeBase) Entries() []Entry {
	out := make([]Entry, len(kb.entries))
	copy(out, kb.entries)
	return out
}

// Len returns the number of entries.
func (kb *KnowledgeBase) Len() int {
	return len(kb.entries)
}

// Get finds an entry by id.
func (kb *KnowledgeBase) Get(id string) (Entry, bool) {
	for _, e := range kb.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Destination returns the navigation target for an entry id. Every id maps
// to a value; entries without a target return NoDestination and false.
func (kb *KnowledgeBase) Destination(id string) (Destination, bool) {
	d, ok := kb.destinations[id]
	return d, ok
}

// Suggestions returns the quick prompts.
func (kb *KnowledgeBase) Suggestions() []string {
	return append([]string(nil), kb.suggestions...)
}

// IsSuggestion reports whether prompt is one of the quick prompts.
func (kb *KnowledgeBase) IsSuggestion(prompt string) bool {
	for _, s := range kb.suggestions {
		if s == prompt {
			return true
		}
	}
	return false
}

// DefaultQuery returns the query run on first open.
func (kb *KnowledgeBase) DefaultQuery() string {
	return kb.defaultQuery
}

// Default returns the portfolio's built-in knowledge base.
func Default() *KnowledgeBase {
	return MustNew([]Entry{
		{
			ID:       "about",
			Title:    "About Vani",
			Keywords: []string{"background", "about", "bio", "summary", "who are you"},
			Answer:   "I'm Vani Balasundaram, a Senior Product Designer focused on clear, human-centered product experiences.",
		},
		{
			ID:       "availability",
			Title:    "Availability",
			Keywords: []string{"availability", "open", "role", "hire", "work"},
			Answer:   "I'm open to the right opportunities. You can reach me via the contact page or the email link in the footer.",
		},
		{
			ID:       "case-study-1",
			Title:    "Case Study 1 — Doctor Anywhere onboarding",
			Keywords: []string{"case study 1", "doctor anywhere", "onboarding", "identity-first", "singpass"},
			Answer:   "Case Study 1 covers identity-first onboarding at Doctor Anywhere, consolidating flows and improving data accuracy for B2C/B2B users while meeting MOH compliance.",
		},
		{
			ID:       "case-study-3",
			Title:    "Case Study 3 — Direct Apply",
			Keywords: []string{"case study 3", "direct apply", "benefits portal", "soda"},
			Answer:   "Case Study 3 highlights Direct Apply, a self-serve benefits portal for HR/SMEs to set up plans, onboard employees, and maintain accounts.",
		},
		{
			ID:       "process",
			Title:    "Design process",
			Keywords: []string{"process", "approach", "methods", "framework"},
			Answer:   "I focus on clarifying the problem, mapping user flows, prototyping quickly, and iterating with product, engineering, and compliance partners.",
		},
		{
			ID:       "contact",
			Title:    "Contact",
			Keywords: []string{"contact", "email", "reach", "message"},
			Answer:   "You can contact me through the Contact page or via the email link in the footer.",
		},
	}, Options{
		Destinations: map[string]Destination{
			"case-study-1": DestinationCaseStudy1,
			"case-study-3": DestinationCaseStudy3,
			"contact":      DestinationContact,
			"about":        DestinationAbout,
		},
	})
}
