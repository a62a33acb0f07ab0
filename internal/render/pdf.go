package render

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"
)

// PDF lays out draft text line by line into a paginated PDF. Lines wider than
// the page are clipped; there is no word wrapping. Output is deterministic
// for identical input (metadata dates are pinned).
func PDF(text string) ([]byte, error) {
	return renderPDF(plainLines(text))
}

// MarkdownPDF parses the draft as markdown first and renders each block with
// a font size/weight per block type, reusing the same line layout as PDF.
func MarkdownPDF(md string) ([]byte, error) {
	return renderPDF(markdownLines(md))
}

func renderPDF(lines []line) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	// pinned dates keep identical input byte-identical
	pdf.SetCreationDate(time.Unix(0, 0))
	pdf.SetModificationDate(time.Unix(0, 0))
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, page := range paginate(lines) {
		pdf.AddPage()
		y := topStart
		for _, ln := range page {
			fontStyle := ""
			if ln.style.bold {
				fontStyle = "B"
			}
			pdf.SetFont("Helvetica", fontStyle, ln.style.size)
			pdf.Text(leftMargin, y, tr(ln.text))
			y += lineAdvance
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
