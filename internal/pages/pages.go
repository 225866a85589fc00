// Package pages loads the portfolio's markdown pages and renders them to
// HTML.
package pages

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// ErrPageNotFound is returned for pages that do not exist.
var ErrPageNotFound = errors.New("page not found")

// protectedPrefix marks pages the case study gate may lock.
const protectedPrefix = "case-study-"

// Page is one rendered portfolio page.
type Page struct {
	Name      string // e.g. "case-study-1.html"
	Slug      string // e.g. "case-study-1"
	Title     string
	Body      template.HTML
	Protected bool
}

// Site is the set of pages, keyed by page name.
type Site struct {
	pages map[string]*Page
	names []string
}

// Load renders every .md file in dir. "index.md" becomes "index.html".
func Load(dir string) (*Site, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("listing pages in %s: %w", dir, err)
	}

	site := &Site{pages: make(map[string]*Page, len(paths))}
	for _, path := range paths {
		page, err := render(md, path)
		if err != nil {
			return nil, err
		}
		site.pages[page.Name] = page
		site.names = append(site.names, page.Name)
	}
	sort.Strings(site.names)

	return site, nil
}

func render(md goldmark.Markdown, path string) (*Page, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("rendering page %s: %w", path, err)
	}

	slug := strings.TrimSuffix(filepath.Base(path), ".md")
	title := extractTitle(src)
	if title == "" {
		title = slug
	}

	return &Page{
		Name:      slug + ".html",
		Slug:      slug,
		Title:     title,
		Body:      template.HTML(buf.String()),
		Protected: strings.HasPrefix(slug, protectedPrefix),
	}, nil
}

// extractTitle returns the text of the first "# " heading.
func extractTitle(src []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(src))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}

// Get returns a page by name.
func (s *Site) Get(name string) (*Page, error) {
	page, ok := s.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, name)
	}
	return page, nil
}

// Names returns the page names in sorted order.
func (s *Site) Names() []string {
	return append([]string(nil), s.names...)
}

// IsProtected reports whether the gate may lock the named page.
func (s *Site) IsProtected(name string) bool {
	page, ok := s.pages[name]
	return ok && page.Protected
}
