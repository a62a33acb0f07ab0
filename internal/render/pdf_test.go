package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func manyLines(n int) []line {
	lines := make([]line, n)
	for i := range lines {
		lines[i] = line{text: "clause", style: bodyStyle}
	}
	return lines
}

func TestPaginate_Boundaries(t *testing.T) {
	// (800 - 10 - 50) / 20 = 37 lines per page
	require.Len(t, paginate(manyLines(37)), 1)
	require.Len(t, paginate(manyLines(38)), 2)
	require.Len(t, paginate(manyLines(74)), 2)
	require.Len(t, paginate(manyLines(75)), 3)
}

func TestPaginate_EmptyInputIsOnePage(t *testing.T) {
	pages := paginate(nil)
	require.Len(t, pages, 1)
	require.Empty(t, pages[0])
}

func TestPDF_Deterministic(t *testing.T) {
	text := "THIS AGREEMENT is made between the parties.\n\n1. Confidentiality.\n2. Term."
	a, err := PDF(text)
	require.NoError(t, err)
	b, err := PDF(text)
	require.NoError(t, err)
	require.NotEmpty(t, a)
	require.True(t, strings.HasPrefix(string(a), "%PDF-"))
	require.Equal(t, a, b, "identical input must yield byte-identical output")
}

func TestPDF_EmptyDraft(t *testing.T) {
	out, err := PDF("")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestMarkdownPDF_Deterministic(t *testing.T) {
	md := "# NDA\n\nSome body text.\n\n## Term\n\nTwo years."
	a, err := MarkdownPDF(md)
	require.NoError(t, err)
	b, err := MarkdownPDF(md)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestMarkdownLines_BlockStyles(t *testing.T) {
	lines := markdownLines("# Title\n\nBody paragraph.\n\n### Sub")
	require.Len(t, lines, 3)

	require.Equal(t, "Title", lines[0].text)
	require.Equal(t, 18.0, lines[0].style.size)
	require.True(t, lines[0].style.bold)

	require.Equal(t, "Body paragraph.", lines[1].text)
	require.Equal(t, 12.0, lines[1].style.size)
	require.False(t, lines[1].style.bold)

	require.Equal(t, "Sub", lines[2].text)
	require.Equal(t, 14.0, lines[2].style.size)
	require.True(t, lines[2].style.bold)
}

func TestHTML_Preview(t *testing.T) {
	out, err := HTML("# NDA\n\nBody.")
	require.NoError(t, err)
	require.Contains(t, out, "<h1>NDA</h1>")
	require.Contains(t, out, "<p>Body.</p>")
}
