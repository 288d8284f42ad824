// Package docx renders a document plan into a WordprocessingML package.
//
// The .docx container is a zip archive of XML parts. The writer emits
// the minimal part set directly: [Content_Types].xml, the package
// relationships, word/document.xml with one section per page, and one
// header/footer part per decorated page.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
)

// ErrEmptyPlan indicates the document plan had no pages to render.
var ErrEmptyPlan = errors.New("document plan has no pages")

// part is one named file inside the .docx zip container.
type part struct {
	name string
	data string
}

// Write renders the plan into the bytes of a .docx package.
func Write(plan models.DocumentPlan) ([]byte, error) {
	if len(plan.Pages) == 0 {
		return nil, ErrEmptyPlan
	}

	doc, headers, footers := buildDocument(plan)

	parts := []part{
		{"[Content_Types].xml", contentTypesXML(len(headers), len(footers))},
		{"_rels/.rels", rootRelsXML},
		{"word/document.xml", doc},
		{"word/_rels/document.xml.rels", documentRelsXML(len(headers), len(footers))},
	}
	for i, h := range headers {
		parts = append(parts, part{fmt.Sprintf("word/header%d.xml", i+1), h})
	}
	for i, f := range footers {
		parts = append(parts, part{fmt.Sprintf("word/footer%d.xml", i+1), f})
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create part %s: %w", p.name, err)
		}
		if _, err := w.Write([]byte(p.data)); err != nil {
			return nil, fmt.Errorf("write part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close package: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the plan and writes it to path in one step, so a
// failed render never leaves a partial file behind.
func WriteFile(path string, plan models.DocumentPlan) error {
	data, err := Write(plan)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// buildDocument produces word/document.xml plus the header and footer
// part payloads referenced by its sections, in part order.
func buildDocument(plan models.DocumentPlan) (doc string, headers, footers []string) {
	var body bytes.Buffer

	for i, page := range plan.Pages {
		switch page.Kind {
		case models.TitlePage:
			body.WriteString(titlePageXML(page))
		case models.TablePage:
			body.WriteString(tablePageXML(page))
		}

		var headerRef, footerRef string
		if hasHeader(page.Header) {
			headers = append(headers, headerXML(page.Header))
			headerRef = fmt.Sprintf("rIdH%d", len(headers))
		}
		if hasFooter(page.Footer) {
			footers = append(footers, footerXML(page.Footer))
			footerRef = fmt.Sprintf("rIdF%d", len(footers))
		}

		sect := sectPrXML(headerRef, footerRef)
		if i < len(plan.Pages)-1 {
			// A section break lives in the paragraph that ends the section.
			body.WriteString("<w:p><w:pPr>" + sect + "</w:pPr></w:p>")
		} else {
			body.WriteString(sect)
		}
	}

	doc = xmlProlog +
		`<w:document xmlns:w="` + nsMain + `" xmlns:r="` + nsRel + `">` +
		"<w:body>" + body.String() + "</w:body></w:document>"
	return doc, headers, footers
}

func hasHeader(h models.HeaderBlock) bool {
	return h != (models.HeaderBlock{})
}

func hasFooter(f models.FooterBlock) bool {
	return len(f.Signers) > 0 || f.GeneratedAt != "" || f.SystemName != ""
}

func titlePageXML(page models.Page) string {
	var b bytes.Buffer
	// Push the block toward the vertical center of the page.
	for i := 0; i < 6; i++ {
		b.WriteString(emptyParagraph)
	}
	for _, line := range page.TitleLines {
		b.WriteString(paragraph(line, parOpts{size: 32, bold: true, center: true, rtl: true}))
	}
	return b.String()
}

func tablePageXML(page models.Page) string {
	var b bytes.Buffer
	if page.Title != "" {
		b.WriteString(emptyParagraph)
		b.WriteString(paragraph(page.Title, parOpts{size: 36, bold: true, center: true, rtl: true}))
		b.WriteString(emptyParagraph)
	}
	b.WriteString(tableXML(page.Table))
	return b.String()
}
