package faq

import (
	"fmt"
	"sort"
	"strings"
)

// MaxResults caps how many entries a search returns.
const MaxResults = 3

const (
	keywordWeight = 2
	titleWeight   = 3
)

// ScoredEntry pairs an entry with its relevance for one query.
type ScoredEntry struct {
	Entry Entry
	Score int
}

// Result is one rendered answer.
type Result struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Answer string `json:"answer"`
	// Target is the page to navigate to. Empty means the result is
	// informational only.
	Target string `json:"target,omitempty"`
	Score  int    `json:"score"`
}

// Actionable reports whether the result links somewhere.
func (r Result) Actionable() bool {
	return r.Target != ""
}

// Notice is shown above fallback results.
type Notice struct {
	Title string `json:"title"`
	Hint  string `json:"hint"`
}

// Response is what a search hands to the presentation layer.
type Response struct {
	Query   string   `json:"query"`
	Matched bool     `json:"matched"`
	Notice  *Notice  `json:"notice,omitempty"`
	Results []Result `json:"results"`
}

// Matcher ranks a knowledge base against free-text queries.
// It holds no mutable state.
type Matcher struct {
	kb *KnowledgeBase
}

// NewMatcher creates a matcher over kb.
func NewMatcher(kb *KnowledgeBase) *Matcher {
	return &Matcher{kb: kb}
}

// KnowledgeBase returns the knowledge base being matched.
func (m *Matcher) KnowledgeBase() *KnowledgeBase {
	return m.kb
}

// Score returns the relevance of entry for an already lowercased query:
// 2 per keyword phrase found in the query, plus 3 when the lowercased title
// is found in the query.
func Score(query string, entry Entry) int {
	score := 0
	for _, k := range entry.Keywords {
		if strings.Contains(query, k) {
			score += keywordWeight
		}
	}
	if strings.Contains(query, strings.ToLower(entry.Title)) {
		score += titleWeight
	}
	return score
}

// Rank scores every entry against an already lowercased query and returns
// the best matches, highest first. Entries scoring zero are dropped and
// ties keep knowledge base order.
func (m *Matcher) Rank(query string) []ScoredEntry {
	ranked := make([]ScoredEntry, 0, len(m.kb.entries))
	for _, e := range m.kb.entries {
		if s := Score(query, e); s > 0 {
			ranked = append(ranked, ScoredEntry{Entry: e, Score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}
	return ranked
}

// Fallback returns the entries shown when nothing matches: the first
// MaxResults entries in source order.
func (m *Matcher) Fallback() []Entry {
	n := min(MaxResults, len(m.kb.entries))
	out := make([]Entry, n)
	copy(out, m.kb.entries[:n])
	return out
}

// Search validates and lowercases query, ranks it and annotates each result
// for pageContext. When nothing matches the fallback entries are returned
// with a notice.
func (m *Matcher) Search(query, pageContext string) (Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Response{}, ErrEmptyQuery
	}

	resp := Response{Query: query}
	ranked := m.Rank(strings.ToLower(query))
	if len(ranked) == 0 {
		resp.Notice = &Notice{
			Title: "No exact match",
			Hint:  m.hint(),
		}
		for _, e := range m.Fallback() {
			resp.Results = append(resp.Results, m.result(e, 0, pageContext))
		}
		return resp, nil
	}

	resp.Matched = true
	for _, r := range ranked {
		resp.Results = append(resp.Results, m.result(r.Entry, r.Score, pageContext))
	}
	return resp, nil
}

func (m *Matcher) result(e Entry, score int, pageContext string) Result {
	dest, _ := m.kb.Destination(e.ID)
	return Result{
		ID:     e.ID,
		Title:  e.Title,
		Answer: Annotate(e, pageContext),
		Target: dest.Page(),
		Score:  score,
	}
}

// hint lists the quick prompts, e.g.
// Try “A”, “B”, or “C”.
func (m *Matcher) hint() string {
	quoted := make([]string, len(m.kb.suggestions))
	for i, s := range m.kb.suggestions {
		quoted[i] = "“" + s + "”"
	}
	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Try %s.", quoted[0])
	case 2:
		return fmt.Sprintf("Try %s or %s.", quoted[0], quoted[1])
	}
	last := len(quoted) - 1
	return fmt.Sprintf("Try %s, or %s.", strings.Join(quoted[:last], ", "), quoted[last])
}
