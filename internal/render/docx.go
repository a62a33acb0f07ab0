package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"strings"
)

const (
	docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	docxDocumentOpen  = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	docxDocumentClose = `</w:body></w:document>`
)

// DOCX renders draft text into a WordprocessingML package. Each non-blank
// line becomes a paragraph: lines wrapped in the **bold** delimiter pair
// become bold left-aligned paragraphs, everything else is justified. Blank
// lines become spacer paragraphs. The zip member headers carry no timestamps,
// so identical input yields identical bytes.
func DOCX(text string) ([]byte, error) {
	var doc bytes.Buffer
	doc.WriteString(docxDocumentOpen)
	for _, raw := range strings.Split(text, "\n") {
		ln := strings.TrimSpace(raw)
		switch {
		case ln == "":
			doc.WriteString(`<w:p/>`)
		case strings.HasPrefix(ln, "**") && strings.HasSuffix(ln, "**") && len(ln) > 4:
			writeParagraph(&doc, strings.TrimSuffix(strings.TrimPrefix(ln, "**"), "**"), true, "left")
		default:
			writeParagraph(&doc, ln, false, "both")
		}
	}
	doc.WriteString(docxDocumentClose)

	return zipDocx(doc.Bytes())
}

func writeParagraph(buf *bytes.Buffer, text string, bold bool, justification string) {
	buf.WriteString(`<w:p><w:pPr><w:jc w:val="`)
	buf.WriteString(justification)
	buf.WriteString(`"/></w:pPr><w:r>`)
	if bold {
		buf.WriteString(`<w:rPr><w:b/></w:rPr>`)
	}
	buf.WriteString(`<w:t xml:space="preserve">`)
	_ = xml.EscapeText(buf, []byte(text))
	buf.WriteString(`</w:t></w:r></w:p>`)
}

func zipDocx(document []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", string(document)},
	}
	for _, part := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: part.name, Method: zip.Deflate})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
