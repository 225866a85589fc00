package faq

import "strings"

// HomePage is the page context for the site root.
const HomePage = "index.html"

// contextRules are checked in order; the first substring found in the page
// context wins.
var contextRules = []struct {
	match    string
	sentence string
}{
	{"case-study-1", "You are currently viewing Case Study 1."},
	{"case-study-3", "You are currently viewing Case Study 3."},
	{"case-study", "You are viewing a case study."},
}

const homeSentence = "You are on the portfolio home page."

// PageContext derives the page context from a request path: the first "/"
// is removed and an empty result means the home page.
func PageContext(path string) string {
	page := strings.Replace(path, "/", "", 1)
	if page == "" {
		return HomePage
	}
	return page
}

// ContextSentence picks the sentence describing pageContext.
func ContextSentence(pageContext string) string {
	for _, r := range contextRules {
		if strings.Contains(pageContext, r.match) {
			return r.sentence
		}
	}
	return homeSentence
}

// Annotate appends the page context sentence to the entry's answer.
func Annotate(entry Entry, pageContext string) string {
	return entry.Answer + " " + ContextSentence(pageContext)
}
