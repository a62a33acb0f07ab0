package render

import "strings"

// Fixed layout constants. Pagination boundaries are golden-file tested, so
// these must not change: a 600x800 page with a 10-unit top start, 50-unit
// bottom margin and 20-unit line advance holds exactly 37 lines.
const (
	pageWidth    = 600.0
	pageHeight   = 800.0
	leftMargin   = 10.0
	topStart     = 10.0
	bottomMargin = 50.0
	lineAdvance  = 20.0
)

type style struct {
	size float64
	bold bool
}

var bodyStyle = style{size: 12}

// heading levels 1..3 get larger bold fonts; deeper levels fall back to body
var headingStyles = map[int]style{
	1: {size: 18, bold: true},
	2: {size: 16, bold: true},
	3: {size: 14, bold: true},
}

type line struct {
	text  string
	style style
}

// paginate distributes styled lines onto pages. The vertical cursor starts at
// topStart and advances by lineAdvance per line; a line that would land past
// pageHeight-bottomMargin starts a new page instead. An empty input still
// yields one (blank) page.
func paginate(lines []line) [][]line {
	pages := [][]line{nil}
	y := topStart
	for _, ln := range lines {
		if y > pageHeight-bottomMargin-lineAdvance {
			pages = append(pages, nil)
			y = topStart
		}
		pages[len(pages)-1] = append(pages[len(pages)-1], ln)
		y += lineAdvance
	}
	return pages
}

func plainLines(text string) []line {
	if text == "" {
		return nil
	}
	var lines []line
	for _, l := range strings.Split(text, "\n") {
		lines = append(lines, line{text: l, style: bodyStyle})
	}
	return lines
}
