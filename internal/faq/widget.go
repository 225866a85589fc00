package faq

import "strings"

// State is the widget's visibility.
type State int

// Widget states.
const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Widget is the "Ask me" panel: open or closed, plus the results of the
// most recent query. Each accepted query replaces the results wholesale.
type Widget struct {
	matcher  *Matcher
	state    State
	query    string
	response *Response
}

// NewWidget returns a closed widget with no results.
func NewWidget(m *Matcher) *Widget {
	return &Widget{matcher: m}
}

// RestoreWidget rebuilds a widget from its persisted open flag and last
// query. Results are recomputed for pageContext.
func RestoreWidget(m *Matcher, open bool, query, pageContext string) *Widget {
	w := NewWidget(m)
	if open {
		w.state = Open
	}
	if strings.TrimSpace(query) != "" {
		w.run(query, pageContext)
	}
	return w
}

// State returns the current visibility.
func (w *Widget) State() State {
	return w.state
}

// IsOpen reports whether the panel is shown.
func (w *Widget) IsOpen() bool {
	return w.state == Open
}

// Query returns the last accepted query, or "" before any query.
func (w *Widget) Query() string {
	return w.query
}

// Response returns the current results, if any query has run.
func (w *Widget) Response() (Response, bool) {
	if w.response == nil {
		return Response{}, false
	}
	return *w.response, true
}

// Toggle opens a closed widget and closes an open one. Opening without
// prior results runs the default query.
func (w *Widget) Toggle(pageContext string) {
	if w.state == Open {
		w.state = Closed
		return
	}
	w.state = Open
	if w.response == nil {
		w.run(w.matcher.kb.DefaultQuery(), pageContext)
	}
}

// Close hides the panel.
func (w *Widget) Close() {
	w.state = Closed
}

// Submit runs a typed query and opens the panel. Blank input returns
// ErrEmptyQuery and leaves the widget unchanged.
func (w *Widget) Submit(text, pageContext string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyQuery
	}
	w.run(text, pageContext)
	w.state = Open
	return nil
}

// Suggest runs one of the quick prompts and opens the panel.
func (w *Widget) Suggest(prompt, pageContext string) error {
	if !w.matcher.kb.IsSuggestion(prompt) {
		return ErrUnknownPrompt
	}
	w.run(prompt, pageContext)
	w.state = Open
	return nil
}

func (w *Widget) run(query, pageContext string) {
	resp, err := w.matcher.Search(query, pageContext)
	if err != nil {
		return
	}
	w.query = resp.Query
	w.response = &resp
}
