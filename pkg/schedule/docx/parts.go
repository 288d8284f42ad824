package docx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
)

const (
	xmlProlog = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

	nsMain  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRel   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkg   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsTypes = "http://schemas.openxmlformats.org/package/2006/content-types"

	relTypeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeHeader   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	relTypeFooter   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"

	ctDocument = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctHeader   = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	ctFooter   = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"

	emptyParagraph = "<w:p/>"
)

// Page geometry: A4 landscape with half-inch margins, in twips.
const (
	pageWidth    = 16838
	pageHeight   = 11906
	pageMargin   = 720
	headerMargin = 360

	// decorationWidth is the usable width for header and footer tables.
	decorationWidth = pageWidth - 2*pageMargin
)

// Schedule table column widths in twips: day label, category label,
// then one per lecture slot.
var gridColWidths = [6]int{1152, 1440, 2592, 2592, 2592, 2592}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func esc(s string) string {
	return xmlEscaper.Replace(s)
}

var rootRelsXML = xmlProlog +
	`<Relationships xmlns="` + nsPkg + `">` +
	`<Relationship Id="rId1" Type="` + relTypeDocument + `" Target="word/document.xml"/>` +
	`</Relationships>`

func contentTypesXML(nHeaders, nFooters int) string {
	var b bytes.Buffer
	b.WriteString(xmlProlog)
	b.WriteString(`<Types xmlns="` + nsTypes + `">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/word/document.xml" ContentType="` + ctDocument + `"/>`)
	for i := 1; i <= nHeaders; i++ {
		fmt.Fprintf(&b, `<Override PartName="/word/header%d.xml" ContentType="%s"/>`, i, ctHeader)
	}
	for i := 1; i <= nFooters; i++ {
		fmt.Fprintf(&b, `<Override PartName="/word/footer%d.xml" ContentType="%s"/>`, i, ctFooter)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func documentRelsXML(nHeaders, nFooters int) string {
	var b bytes.Buffer
	b.WriteString(xmlProlog)
	b.WriteString(`<Relationships xmlns="` + nsPkg + `">`)
	for i := 1; i <= nHeaders; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rIdH%d" Type="%s" Target="header%d.xml"/>`, i, relTypeHeader, i)
	}
	for i := 1; i <= nFooters; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rIdF%d" Type="%s" Target="footer%d.xml"/>`, i, relTypeFooter, i)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func sectPrXML(headerRef, footerRef string) string {
	var b bytes.Buffer
	b.WriteString("<w:sectPr>")
	if headerRef != "" {
		fmt.Fprintf(&b, `<w:headerReference w:type="default" r:id="%s"/>`, headerRef)
	}
	if footerRef != "" {
		fmt.Fprintf(&b, `<w:footerReference w:type="default" r:id="%s"/>`, footerRef)
	}
	fmt.Fprintf(&b, `<w:pgSz w:w="%d" w:h="%d" w:orient="landscape"/>`, pageWidth, pageHeight)
	fmt.Fprintf(&b,
		`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="%d" w:footer="%d" w:gutter="0"/>`,
		pageMargin, pageMargin, pageMargin, pageMargin, headerMargin, headerMargin)
	b.WriteString("</w:sectPr>")
	return b.String()
}

// parOpts controls run formatting for a single-run paragraph.
// size is in half points; zero keeps the document default.
type parOpts struct {
	size   int
	bold   bool
	italic bool
	center bool
	rtl    bool
}

func paragraph(text string, o parOpts) string {
	var b bytes.Buffer
	b.WriteString("<w:p><w:pPr>")
	if o.center {
		b.WriteString(`<w:jc w:val="center"/>`)
	}
	if o.rtl {
		b.WriteString("<w:bidi/>")
	}
	b.WriteString("</w:pPr>")
	if text != "" {
		b.WriteString("<w:r><w:rPr>")
		b.WriteString(`<w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:cs="Arial"/>`)
		if o.bold {
			b.WriteString("<w:b/><w:bCs/>")
		}
		if o.italic {
			b.WriteString("<w:i/><w:iCs/>")
		}
		if o.size > 0 {
			fmt.Fprintf(&b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, o.size, o.size)
		}
		b.WriteString("</w:rPr>")
		fmt.Fprintf(&b, `<w:t xml:space="preserve">%s</w:t>`, esc(text))
		b.WriteString("</w:r>")
	}
	b.WriteString("</w:p>")
	return b.String()
}

// tableXML renders a TableDescription as a bordered, centered,
// right-to-left table. Vertical merges come out as vMerge restart on
// the spanning cell and vMerge continuation markers on covered cells.
func tableXML(t models.TableDescription) string {
	var b bytes.Buffer
	b.WriteString("<w:tbl><w:tblPr>")
	total := 0
	for _, w := range gridColWidths {
		total += w
	}
	fmt.Fprintf(&b, `<w:tblW w:w="%d" w:type="dxa"/>`, total)
	b.WriteString(`<w:jc w:val="center"/>`)
	b.WriteString(tableBordersXML(4))
	b.WriteString("<w:bidiVisual/>")
	b.WriteString("</w:tblPr><w:tblGrid>")
	for _, w := range gridColWidths {
		fmt.Fprintf(&b, `<w:gridCol w:w="%d"/>`, w)
	}
	b.WriteString("</w:tblGrid>")

	for _, row := range t.Rows {
		b.WriteString("<w:tr>")
		for col, cell := range row {
			width := gridColWidths[len(gridColWidths)-1]
			if col < len(gridColWidths) {
				width = gridColWidths[col]
			}
			b.WriteString("<w:tc><w:tcPr>")
			fmt.Fprintf(&b, `<w:tcW w:w="%d" w:type="dxa"/>`, width)
			if cell.RowSpan > 1 {
				b.WriteString(`<w:vMerge w:val="restart"/>`)
			} else if cell.Merged {
				b.WriteString("<w:vMerge/>")
			}
			if cell.Shading != "" {
				fmt.Fprintf(&b, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, cell.Shading)
			}
			b.WriteString(`<w:vAlign w:val="center"/>`)
			b.WriteString("</w:tcPr>")
			b.WriteString(paragraph(cell.Text, parOpts{size: 16, center: true, rtl: cell.RTL}))
			b.WriteString("</w:tc>")
		}
		b.WriteString("</w:tr>")
	}
	b.WriteString("</w:tbl>")
	return b.String()
}

func tableBordersXML(sz int) string {
	edge := func(name string) string {
		return fmt.Sprintf(`<w:%s w:val="single" w:sz="%d" w:space="0" w:color="000000"/>`, name, sz)
	}
	return "<w:tblBorders>" +
		edge("top") + edge("left") + edge("bottom") + edge("right") +
		edge("insideH") + edge("insideV") +
		"</w:tblBorders>"
}

func borderlessTablePr(colWidths []int) string {
	var b bytes.Buffer
	total := 0
	for _, w := range colWidths {
		total += w
	}
	b.WriteString("<w:tblPr>")
	fmt.Fprintf(&b, `<w:tblW w:w="%d" w:type="dxa"/>`, total)
	b.WriteString(`<w:jc w:val="center"/>`)
	b.WriteString(`<w:tblBorders>` +
		`<w:top w:val="none" w:sz="0" w:space="0" w:color="auto"/>` +
		`<w:left w:val="none" w:sz="0" w:space="0" w:color="auto"/>` +
		`<w:bottom w:val="none" w:sz="0" w:space="0" w:color="auto"/>` +
		`<w:right w:val="none" w:sz="0" w:space="0" w:color="auto"/>` +
		`<w:insideH w:val="none" w:sz="0" w:space="0" w:color="auto"/>` +
		`<w:insideV w:val="none" w:sz="0" w:space="0" w:color="auto"/>` +
		`</w:tblBorders>`)
	b.WriteString("<w:bidiVisual/>")
	b.WriteString("</w:tblPr><w:tblGrid>")
	for _, w := range colWidths {
		fmt.Fprintf(&b, `<w:gridCol w:w="%d"/>`, w)
	}
	b.WriteString("</w:tblGrid>")
	return b.String()
}

func borderlessRow(cells []string, widths []int, size int, bold bool) string {
	var b bytes.Buffer
	b.WriteString("<w:tr>")
	for i, text := range cells {
		b.WriteString("<w:tc><w:tcPr>")
		fmt.Fprintf(&b, `<w:tcW w:w="%d" w:type="dxa"/>`, widths[i])
		b.WriteString(`<w:vAlign w:val="center"/>`)
		b.WriteString("</w:tcPr>")
		b.WriteString(paragraph(text, parOpts{size: size, bold: bold, center: true, rtl: true}))
		b.WriteString("</w:tc>")
	}
	b.WriteString("</w:tr>")
	return b.String()
}

// headerXML builds one header part: a borderless three-column identity
// table with the institution on the right (first column, shown right
// under bidiVisual) and the academic details on the left.
func headerXML(h models.HeaderBlock) string {
	widths := []int{5040, decorationWidth - 2*5040, 5040}
	var b bytes.Buffer
	b.WriteString(xmlProlog)
	b.WriteString(`<w:hdr xmlns:w="` + nsMain + `">`)
	b.WriteString("<w:tbl>")
	b.WriteString(borderlessTablePr(widths))
	b.WriteString(borderlessRow([]string{h.University, "", h.AcademicYear}, widths, 24, true))
	b.WriteString(borderlessRow([]string{h.Faculty, "", h.Semester}, widths, 24, true))
	b.WriteString(borderlessRow([]string{h.Department, h.Title, h.GroupLine}, widths, 24, true))
	b.WriteString("</w:tbl>")
	b.WriteString(emptyParagraph)
	b.WriteString("</w:hdr>")
	return b.String()
}

// footerXML builds one footer part: the signature table, then the
// generation line.
func footerXML(f models.FooterBlock) string {
	var b bytes.Buffer
	b.WriteString(xmlProlog)
	b.WriteString(`<w:ftr xmlns:w="` + nsMain + `">`)
	if len(f.Signers) > 0 {
		widths := make([]int, len(f.Signers))
		titles := make([]string, len(f.Signers))
		names := make([]string, len(f.Signers))
		for i, s := range f.Signers {
			widths[i] = decorationWidth / len(f.Signers)
			titles[i] = s.Title
			names[i] = s.Name
		}
		b.WriteString("<w:tbl>")
		b.WriteString(borderlessTablePr(widths))
		b.WriteString(borderlessRow(titles, widths, 20, true))
		b.WriteString(borderlessRow(names, widths, 20, true))
		b.WriteString("</w:tbl>")
	}
	line := f.SystemName
	if f.GeneratedAt != "" {
		if line != "" {
			line += " "
		}
		line += f.GeneratedAt
	}
	b.WriteString(paragraph(line, parOpts{size: 20, italic: true, center: true, rtl: true}))
	b.WriteString("</w:ftr>")
	return b.String()
}
