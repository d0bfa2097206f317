// Package docconv converts between document markup formats: Markdown to
// HTML (with math rendered to MathML), HTML to Markdown, and HTML to plain
// text. All conversions are pure in-memory transforms.
package docconv

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/net/html"
)

// MarkdownToHTML renders GitHub-flavored Markdown to an HTML fragment.
// TeX math delimited with $$ is converted to MathML.
func MarkdownToHTML(source []byte) ([]byte, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			treeblood.MathML(),
		),
	)
	var buf bytes.Buffer
	if err := engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("docconv: convert markdown: %w", err)
	}
	return buf.Bytes(), nil
}

// HTMLToMarkdown converts an HTML document or fragment to Markdown.
func HTMLToMarkdown(source string) (string, error) {
	conv := md.NewConverter("", true, nil)
	out, err := conv.ConvertString(source)
	if err != nil {
		return "", fmt.Errorf("docconv: convert html: %w", err)
	}
	return out, nil
}

// HTMLToText strips markup from an HTML document, skipping script and style
// content, collapsing runs of whitespace, and separating block elements with
// newlines.
func HTMLToText(source string) (string, error) {
	root, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return "", fmt.Errorf("docconv: parse html: %w", err)
	}

	var sb strings.Builder
	walkText(root, &sb)
	return collapseBlankLines(sb.String()), nil
}

func walkText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "head", "noscript":
			return
		}
	case html.TextNode:
		text := strings.Join(strings.Fields(n.Data), " ")
		if text != "" {
			if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
				sb.WriteString(" ")
			}
			sb.WriteString(text)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkText(c, sb)
	}

	if n.Type == html.ElementNode && isBlock(n.Data) {
		sb.WriteString("\n")
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "br", "h1", "h2", "h3", "h4", "h5", "h6",
		"li", "ul", "ol", "table", "tr", "blockquote", "pre", "section", "article":
		return true
	}
	return false
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, l)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
