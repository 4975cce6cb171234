package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// XML namespaces used in docx packages.
const (
	nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

// Write serializes paragraphs into a minimal docx package. Paragraph order
// is preserved exactly.
func Write(w io.Writer, paragraphs []Paragraph) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML()},
		{"word/document.xml", documentXML(paragraphs)},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return fmt.Errorf("write %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize docx package: %w", err)
	}
	return nil
}

func documentXML(paragraphs []Paragraph) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&b, `<w:document xmlns:w="%s" xmlns:r="%s"><w:body>`, nsW, nsR)
	for _, p := range paragraphs {
		writeParagraph(&b, p)
	}
	b.WriteString(`<w:sectPr/></w:body></w:document>`)
	return b.String()
}

func writeParagraph(b *strings.Builder, p Paragraph) {
	b.WriteString("<w:p>")
	writeParagraphProps(b, p)
	for _, r := range p.Runs {
		writeRun(b, r)
	}
	b.WriteString("</w:p>")
}

// writeParagraphProps emits <w:pPr> children in schema order: pStyle,
// tabs, spacing, jc.
func writeParagraphProps(b *strings.Builder, p Paragraph) {
	hasProps := p.HeadingLevel > 0 || len(p.TabStops) > 0 ||
		p.SpacingBefore > 0 || p.SpacingAfter > 0 || p.Alignment != ""
	if !hasProps {
		return
	}
	b.WriteString("<w:pPr>")
	if p.HeadingLevel >= 1 && p.HeadingLevel <= 6 {
		fmt.Fprintf(b, `<w:pStyle w:val="Heading%d"/>`, p.HeadingLevel)
	}
	if len(p.TabStops) > 0 {
		b.WriteString("<w:tabs>")
		for _, pos := range p.TabStops {
			fmt.Fprintf(b, `<w:tab w:val="left" w:pos="%d"/>`, pos)
		}
		b.WriteString("</w:tabs>")
	}
	if p.SpacingBefore > 0 || p.SpacingAfter > 0 {
		fmt.Fprintf(b, `<w:spacing w:before="%d" w:after="%d"/>`, p.SpacingBefore, p.SpacingAfter)
	}
	if jc := justificationValue(p.Alignment); jc != "" {
		fmt.Fprintf(b, `<w:jc w:val="%s"/>`, jc)
	}
	b.WriteString("</w:pPr>")
}

func writeRun(b *strings.Builder, r Run) {
	b.WriteString("<w:r>")
	writeRunProps(b, r)
	if r.Tab {
		b.WriteString("<w:tab/>")
	} else {
		fmt.Fprintf(b, `<w:t xml:space="preserve">%s</w:t>`, escape(r.Text))
	}
	b.WriteString("</w:r>")
}

func writeRunProps(b *strings.Builder, r Run) {
	if r.Font == "" && r.SizeHalfPoints == 0 && !r.Bold && !r.Italic && !r.Underline {
		return
	}
	b.WriteString("<w:rPr>")
	if r.Font != "" {
		fmt.Fprintf(b, `<w:rFonts w:ascii="%s" w:hAnsi="%s"/>`, escape(r.Font), escape(r.Font))
	}
	if r.Bold {
		b.WriteString("<w:b/>")
	}
	if r.Italic {
		b.WriteString("<w:i/>")
	}
	if r.Underline {
		b.WriteString(`<w:u w:val="single"/>`)
	}
	if r.SizeHalfPoints > 0 {
		fmt.Fprintf(b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, r.SizeHalfPoints, r.SizeHalfPoints)
	}
	b.WriteString("</w:rPr>")
}

func justificationValue(a Alignment) string {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return string(a)
	case AlignJustified:
		return "both"
	default:
		return ""
	}
}

// stylesXML declares the six heading styles referenced by pStyle so word
// processors map tagged paragraphs into their outline.
func stylesXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	fmt.Fprintf(&b, `<w:styles xmlns:w="%s">`, nsW)
	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>`)
	for level := 1; level <= 6; level++ {
		fmt.Fprintf(&b,
			`<w:style w:type="paragraph" w:styleId="Heading%d"><w:name w:val="heading %d"/><w:basedOn w:val="Normal"/><w:pPr><w:outlineLvl w:val="%d"/></w:pPr></w:style>`,
			level, level, level-1)
	}
	b.WriteString(`</w:styles>`)
	return b.String()
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
