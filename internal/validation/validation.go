package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength caps FAQ queries, in characters.
const MaxQueryLength = 200

// PagePattern defines a valid page name: lowercase letters, digits and
// hyphens followed by ".html".
var PagePattern = regexp.MustCompile(`^[a-z0-9-]+\.html$`)

// ValidatePage checks if a page name matches the allowed pattern.
func ValidatePage(page string) bool {
	if page == "" || len(page) > 100 {
		return false
	}
	return PagePattern.MatchString(page)
}

// ValidateQuery trims a free-text FAQ query and checks it is usable.
// Returns the trimmed query, or false and a message.
func ValidateQuery(query string) (string, bool, string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false, "Query is required"
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return "", false, "Query is too long"
	}
	return query, true, ""
}

// SafeRedirect returns path when it is a local absolute path, "/" otherwise.
// This prevents open redirects through form fields and Referer headers.
func SafeRedirect(path string) string {
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	u, err := url.Parse(path)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return path
}

// PathFromURL extracts the path from an absolute or relative URL, e.g. a
// Referer header. Returns "" if it cannot be parsed.
func PathFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Path
}
