package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// markdownLines classifies each top-level markdown block and flattens it into
// styled layout lines. Only the block type matters for layout; inline markup
// inside a block renders as its plain text.
func markdownLines(md string) []line {
	if md == "" {
		return nil
	}
	source := []byte(md)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var lines []line
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		st := bodyStyle
		if h, ok := c.(*ast.Heading); ok {
			if hs, ok := headingStyles[h.Level]; ok {
				st = hs
			}
		}
		txt := strings.TrimSpace(string(c.Text(source)))
		for _, l := range strings.Split(txt, "\n") {
			lines = append(lines, line{text: l, style: st})
		}
	}
	return lines
}

// HTML converts draft markdown into an HTML preview for the inline response
// variant.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
