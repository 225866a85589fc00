package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vanifolio/internal/config"
	"vanifolio/internal/faq"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SITE_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "vanifolio dev\n" {
		t.Errorf("output = %q", out)
	}
}

func TestAsk(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "match with target",
			args: []string{"ask", "doctor", "anywhere", "onboarding"},
			want: []string{"1. Case Study 1 — Doctor Anywhere onboarding", "-> /case-study-1.html", "You are on the portfolio home page."},
		},
		{
			name: "page context",
			args: []string{"ask", "availability", "--page", "/case-study-3.html"},
			want: []string{"1. Availability", "You are currently viewing Case Study 3."},
		},
		{
			name: "fallback",
			args: []string{"ask", "xyzzy"},
			want: []string{"No exact match. Try “Doctor Anywhere onboarding”, “Direct Apply”, or “Availability”.", "1. About Vani"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("ask: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestAsk_JSON(t *testing.T) {
	out, err := run(t, "ask", "contact", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var resp faq.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if !resp.Matched || resp.Results[0].ID != "contact" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestAsk_Blank(t *testing.T) {
	if _, err := run(t, "ask", "   "); !errors.Is(err, faq.ErrEmptyQuery) {
		t.Errorf("error = %v, want ErrEmptyQuery", err)
	}
}

func TestKnowledgeExportAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")

	out, err := run(t, "knowledge", "export", "--out", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Wrote 6 entries") {
		t.Errorf("output = %q", out)
	}

	out, err = run(t, "knowledge", "validate", path)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "6 entries, 3 suggestions") {
		t.Errorf("output = %q", out)
	}

	kb, err := config.LoadSiteFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if kb.Len() != faq.Default().Len() {
		t.Errorf("exported %d entries", kb.Len())
	}
}

func TestKnowledgeExport_Stdout(t *testing.T) {
	out, err := run(t, "knowledge", "export")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "id: case-study-1") || !strings.Contains(out, "target: contact") {
		t.Errorf("unexpected YAML:\n%s", out)
	}
}

func TestKnowledgeValidate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("entries:\n  - {id: a, title: A}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "knowledge", "validate", path); !errors.Is(err, faq.ErrInvalidKnowledgeBase) {
		t.Errorf("error = %v, want ErrInvalidKnowledgeBase", err)
	}
}

func TestQueries_NoDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := run(t, "queries"); !errors.Is(err, errNoDatabase) {
		t.Errorf("error = %v, want errNoDatabase", err)
	}
	if _, err := run(t, "queries", "show", "not-a-uuid"); err == nil {
		t.Error("expected an error for an invalid id")
	}
}
