/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/niklasfasching/go-org/org"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var newOrgConfig = org.New

var parseOrg = func(config *org.Configuration, reader io.Reader) *org.Document {
	return config.Parse(reader, "")
}

var newHTMLWriter = org.NewHTMLWriter

var writeOrg = func(doc *org.Document, writer *org.HTMLWriter) (string, error) {
	return doc.Write(writer)
}

var parseHTMLFragment = nethtml.ParseFragment

var renderHTML = nethtml.Render

const externalLinkPrefix = "↗ "

var titleDirective = regexp.MustCompile(`(?i)^\s*#\+TITLE:\s+(.+)$`)

var firstHeadline = regexp.MustCompile(`(?m)^\*+\s+(.+)$`)

// ParseOrgToHTML converts org-mode content to HTML. External links are
// marked and open in a new tab.
func ParseOrgToHTML(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", errEmptyOrgDocument
	}

	config := newOrgConfig()

	doc := parseOrg(config, strings.NewReader(content))
	if doc.Error != nil {
		return "", fmt.Errorf("failed to parse org-mode content: %w", doc.Error)
	}

	writer := newHTMLWriter()
	writer.HighlightCodeBlock = func(source, lang string, inline bool, params map[string]string) string {
		if inline {
			return `<code class="inline-code">` + html.EscapeString(source) + `</code>`
		}
		return `<pre><code class="code-block">` + html.EscapeString(source) + `</code></pre>`
	}

	renderedHTML, err := writeOrg(doc, writer)
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	annotatedHTML, err := annotateExternalLinks(renderedHTML)
	if err != nil {
		return "", fmt.Errorf("failed to annotate external links: %w", err)
	}

	return annotatedHTML, nil
}

// ExtractTitle returns the #+TITLE: directive, falling back to the first
// headline.
func ExtractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if matches := titleDirective.FindStringSubmatch(line); len(matches) > 1 {
			return strings.TrimSpace(matches[1])
		}
	}

	if matches := firstHeadline.FindStringSubmatch(content); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	return "Notes"
}

func annotateExternalLinks(htmlBody string) (string, error) {
	if strings.TrimSpace(htmlBody) == "" {
		return htmlBody, nil
	}

	container := &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := parseHTMLFragment(strings.NewReader(htmlBody), container)
	if err != nil {
		return "", err
	}

	for _, node := range nodes {
		container.AppendChild(node)
	}

	walkLinks(container)

	var buffer bytes.Buffer
	for child := container.FirstChild; child != nil; child = child.NextSibling {
		if err := renderHTML(&buffer, child); err != nil {
			return "", err
		}
	}

	return buffer.String(), nil
}

func walkLinks(node *nethtml.Node) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode && child.DataAtom == atom.A {
			if isExternalLink(attrValue(child, "href")) {
				markExternal(child)
			}
		}

		walkLinks(child)
	}
}

func markExternal(link *nethtml.Node) {
	setAttr(link, "target", "_blank")
	setAttr(link, "rel", "noopener noreferrer")

	if link.FirstChild != nil && link.FirstChild.Type == nethtml.TextNode &&
		strings.HasPrefix(link.FirstChild.Data, externalLinkPrefix) {
		return
	}

	prefix := &nethtml.Node{Type: nethtml.TextNode, Data: externalLinkPrefix}
	if link.FirstChild != nil {
		link.InsertBefore(prefix, link.FirstChild)
	} else {
		link.AppendChild(prefix)
	}
}

func attrValue(node *nethtml.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}

	return ""
}

func setAttr(node *nethtml.Node, key, value string) {
	for i, attr := range node.Attr {
		if attr.Key == key {
			node.Attr[i].Val = value
			return
		}
	}

	node.Attr = append(node.Attr, nethtml.Attribute{Key: key, Val: value})
}

func isExternalLink(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}

	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}
