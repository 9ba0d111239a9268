// Package doc converts uploaded document bytes into the plain UTF-8 text
// the extractor consumes. PDF and HTML inputs are flattened to text here;
// the core pipeline only ever sees lines of text.
package doc

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are HTML elements that imply a line break when flattened.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "section": true, "article": true, "header": true,
	"footer": true, "blockquote": true, "pre": true,
}

// NormalizeText cleans raw text input: strips a UTF-8 BOM, coerces invalid
// bytes to the replacement rune, and normalizes line endings. Extraction is
// line-oriented, so consistent line endings matter.
func NormalizeText(b []byte) string {
	s := strings.TrimPrefix(string(b), "\uFEFF")
	s = strings.ToValidUTF8(s, "�")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// FromHTML flattens an HTML document to plain text, one line per block
// element, skipping script and style content. FNOL documents forwarded
// from email frequently arrive as HTML exports.
func FromHTML(content string) (string, error) {
	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
			if blockTags[n.Data] {
				buf.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			buf.WriteString("\n")
		}
	}
	walk(root)

	// Collapse runs of blank lines left by nested block elements.
	lines := strings.Split(buf.String(), "\n")
	var out []string
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			out = append(out, ln)
		}
	}
	return strings.Join(out, "\n"), nil
}
