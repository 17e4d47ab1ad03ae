// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/niklasfasching/go-org/org"
	nethtml "golang.org/x/net/html"
)

var (
	errTestWriteFailed  = errors.New("write failed")
	errTestRenderFailed = errors.New("render failed")
)

func TestParseOrgToHTML(t *testing.T) {
	content := "* Heading\nSome text"

	rendered, err := ParseOrgToHTML(content)
	if err != nil {
		t.Fatalf("ParseOrgToHTML failed: %v", err)
	}

	if !strings.Contains(rendered, "Heading") {
		t.Fatalf("expected heading in output, got %s", rendered)
	}
}

func TestParseOrgToHTMLEmpty(t *testing.T) {
	if _, err := ParseOrgToHTML("   \n"); !errors.Is(err, errEmptyOrgDocument) {
		t.Fatalf("expected errEmptyOrgDocument, got %v", err)
	}
}

func TestParseOrgToHTMLMarksExternalLinks(t *testing.T) {
	content := "[[https://example.com][Reference]] and [[/about][About]]"

	rendered, err := ParseOrgToHTML(content)
	if err != nil {
		t.Fatalf("ParseOrgToHTML failed: %v", err)
	}

	if !strings.Contains(rendered, `target="_blank"`) {
		t.Fatalf("expected external link to open in new tab, got %s", rendered)
	}

	if !strings.Contains(rendered, `rel="noopener noreferrer"`) {
		t.Fatalf("expected noopener noreferrer, got %s", rendered)
	}

	if strings.Count(rendered, externalLinkPrefix) != 1 {
		t.Fatalf("expected exactly one external link prefix, got %s", rendered)
	}
}

func TestParseOrgToHTMLHighlightCodeBlocks(t *testing.T) {
	content := "#+begin_src go\nx := 1 < 2\n#+end_src"

	rendered, err := ParseOrgToHTML(content)
	if err != nil {
		t.Fatalf("ParseOrgToHTML failed: %v", err)
	}

	if !strings.Contains(rendered, `class="code-block"`) {
		t.Fatalf("expected code block class, got %s", rendered)
	}

	if !strings.Contains(rendered, "x := 1 &lt; 2") {
		t.Fatalf("expected escaped code, got %s", rendered)
	}
}

func TestIsExternalLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href string
		want bool
	}{
		{href: "", want: false},
		{href: "#stages", want: false},
		{href: "/about", want: false},
		{href: "https://example.com", want: true},
		{href: " http://example.com ", want: true},
	}

	for _, tt := range tests {
		if got := isExternalLink(tt.href); got != tt.want {
			t.Fatalf("isExternalLink(%q) = %v, want %v", tt.href, got, tt.want)
		}
	}
}

func TestAnnotateExternalLinksIsIdempotent(t *testing.T) {
	t.Parallel()

	once, err := annotateExternalLinks(`<a href="https://example.com">x</a>`)
	if err != nil {
		t.Fatalf("annotateExternalLinks failed: %v", err)
	}

	twice, err := annotateExternalLinks(once)
	if err != nil {
		t.Fatalf("annotateExternalLinks failed: %v", err)
	}

	if once != twice {
		t.Fatalf("expected stable output, got %q then %q", once, twice)
	}
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		content string
		want    string
	}{
		{content: "#+TITLE: Renal notes\n* Heading", want: "Renal notes"},
		{content: "* First heading\n** Second", want: "First heading"},
		{content: "plain text", want: "Notes"},
	}

	for _, tt := range tests {
		if got := ExtractTitle(tt.content); got != tt.want {
			t.Fatalf("ExtractTitle(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestParseOrgToHTMLWriteError(t *testing.T) {
	originalWrite := writeOrg
	writeOrg = func(*org.Document, *org.HTMLWriter) (string, error) {
		return "", errTestWriteFailed
	}
	t.Cleanup(func() { writeOrg = originalWrite })

	if _, err := ParseOrgToHTML("* Heading"); !errors.Is(err, errTestWriteFailed) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestParseOrgToHTMLRenderError(t *testing.T) {
	originalRender := renderHTML
	renderHTML = func(io.Writer, *nethtml.Node) error {
		return errTestRenderFailed
	}
	t.Cleanup(func() { renderHTML = originalRender })

	if _, err := ParseOrgToHTML("* Heading"); !errors.Is(err, errTestRenderFailed) {
		t.Fatalf("expected render error, got %v", err)
	}
}
