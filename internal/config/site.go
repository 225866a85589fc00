package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"vanifolio/internal/faq"
)

// SiteFile is the YAML document describing the FAQ knowledge base.
// Hand-edited content that is easier to manage in YAML than env vars.
type SiteFile struct {
	DefaultQuery string        `koanf:"default_query" yaml:"default_query,omitempty"`
	Suggestions  []string      `koanf:"suggestions" yaml:"suggestions,omitempty"`
	Entries      []EntryConfig `koanf:"entries" yaml:"entries"`
}

// EntryConfig defines one knowledge base entry.
type EntryConfig struct {
	ID       string   `koanf:"id" yaml:"id"`
	Title    string   `koanf:"title" yaml:"title"`
	Keywords []string `koanf:"keywords" yaml:"keywords"`
	Answer   string   `koanf:"answer" yaml:"answer"`
	Target   string   `koanf:"target" yaml:"target,omitempty"` // case-study-1, case-study-3, contact, about
}

// LoadSiteFile reads the site YAML, then overlays FAQ_* environment
// variables (FAQ_DEFAULT_QUERY -> default_query). A missing file yields the
// built-in knowledge base.
func LoadSiteFile(path string) (*faq.KnowledgeBase, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return faq.Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("accessing site file %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("reading site file %s: %w", path, err)
	}

	if err := k.Load(env.Provider("FAQ_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FAQ_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	var site SiteFile
	if err := k.Unmarshal("", &site); err != nil {
		return nil, fmt.Errorf("unmarshalling site file: %w", err)
	}

	return site.KnowledgeBase()
}

// KnowledgeBase validates the file and builds the knowledge base.
func (s *SiteFile) KnowledgeBase() (*faq.KnowledgeBase, error) {
	entries := make([]faq.Entry, 0, len(s.Entries))
	destinations := make(map[string]faq.Destination)
	for _, e := range s.Entries {
		entries = append(entries, faq.Entry{
			ID:       e.ID,
			Title:    e.Title,
			Keywords: e.Keywords,
			Answer:   e.Answer,
		})
		if e.Target == "" {
			continue
		}
		dest, err := faq.ParseDestination(e.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", faq.ErrInvalidKnowledgeBase, e.ID, err)
		}
		destinations[e.ID] = dest
	}

	return faq.New(entries, faq.Options{
		Destinations: destinations,
		Suggestions:  s.Suggestions,
		DefaultQuery: s.DefaultQuery,
	})
}

// SiteFileFrom describes an existing knowledge base as a SiteFile.
func SiteFileFrom(kb *faq.KnowledgeBase) *SiteFile {
	site := &SiteFile{
		DefaultQuery: kb.DefaultQuery(),
		Suggestions:  kb.Suggestions(),
	}
	for _, e := range kb.Entries() {
		dest, _ := kb.Destination(e.ID)
		site.Entries = append(site.Entries, EntryConfig{
			ID:       e.ID,
			Title:    e.Title,
			Keywords: e.Keywords,
			Answer:   e.Answer,
			Target:   string(dest),
		})
	}
	return site
}

// Marshal encodes the site file as YAML.
func (s *SiteFile) Marshal() ([]byte, error) {
	data, err := yamlv3.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshalling site file: %w", err)
	}
	return data, nil
}

// Save writes the site file to path.
func (s *SiteFile) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing site file to %s: %w", path, err)
	}
	return nil
}
