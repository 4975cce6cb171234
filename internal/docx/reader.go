package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
)

type parsedRun struct {
	text           string
	bold           bool
	italic         bool
	underline      bool
	font           string
	sizeHalfPoints int
}

type parsedParagraph struct {
	runs          []parsedRun
	style         string
	align         string
	spacingBefore int
	spacingAfter  int
	tabStops      []int
}

// ExtractText returns the document's plain text, one line per paragraph.
// Tabs inside runs are preserved. Blank paragraphs become blank lines;
// consumers that chunk the text drop those.
func ExtractText(data []byte) (string, error) {
	paragraphs, err := parseDocument(data)
	if err != nil {
		return "", err
	}
	lines := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		var b strings.Builder
		for _, r := range p.runs {
			b.WriteString(r.text)
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n"), nil
}

// ExtractMarkup renders the document as simple HTML preserving the inline
// style the template analyzer needs: emphasis spans, fonts, sizes,
// alignment, paragraph spacing and tab stops.
func ExtractMarkup(data []byte) (string, error) {
	paragraphs, err := parseDocument(data)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, p := range paragraphs {
		if len(p.runs) == 0 {
			continue
		}
		writeMarkupParagraph(&b, p)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func writeMarkupParagraph(b *strings.Builder, p parsedParagraph) {
	tag := "p"
	if level := headingLevel(p.style); level > 0 {
		tag = fmt.Sprintf("h%d", level)
	}

	b.WriteString("<" + tag)
	if p.align != "" {
		fmt.Fprintf(b, ` align=%q`, p.align)
	}
	if p.spacingBefore > 0 || p.spacingAfter > 0 {
		fmt.Fprintf(b, ` data-spacing-before="%d" data-spacing-after="%d"`, p.spacingBefore, p.spacingAfter)
	}
	if len(p.tabStops) > 0 {
		stops := make([]string, len(p.tabStops))
		for i, s := range p.tabStops {
			stops[i] = strconv.Itoa(s)
		}
		fmt.Fprintf(b, ` data-tab-stops=%q`, strings.Join(stops, ","))
	}
	b.WriteString(">")

	for _, r := range p.runs {
		writeMarkupRun(b, r)
	}
	fmt.Fprintf(b, "</%s>", tag)
}

func writeMarkupRun(b *strings.Builder, r parsedRun) {
	var style []string
	if r.font != "" {
		style = append(style, "font-family:"+r.font)
	}
	if r.sizeHalfPoints > 0 {
		style = append(style, fmt.Sprintf("font-size:%gpt", float64(r.sizeHalfPoints)/2))
	}
	if len(style) > 0 {
		fmt.Fprintf(b, `<span style=%q>`, strings.Join(style, ";"))
	}
	if r.bold {
		b.WriteString("<strong>")
	}
	if r.italic {
		b.WriteString("<em>")
	}
	if r.underline {
		b.WriteString("<u>")
	}

	b.WriteString(html.EscapeString(strings.ReplaceAll(r.text, "\t", " ")))

	if r.underline {
		b.WriteString("</u>")
	}
	if r.italic {
		b.WriteString("</em>")
	}
	if r.bold {
		b.WriteString("</strong>")
	}
	if len(style) > 0 {
		b.WriteString("</span>")
	}
}

// headingLevel maps a paragraph style name onto a heading level, 0 when
// the style is not a heading.
func headingLevel(style string) int {
	lower := strings.ToLower(style)
	if lower == "title" {
		return 1
	}
	if lower == "subtitle" {
		return 2
	}
	if rest, ok := strings.CutPrefix(lower, "heading"); ok {
		if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
			return int(rest[0] - '0')
		}
	}
	return 0
}

// parseDocument streams word/document.xml out of the package and collects
// paragraphs with their run and paragraph properties.
func parseDocument(data []byte) ([]parsedParagraph, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("%w: word/document.xml not found", ErrNotDocx)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	return parseBody(rc)
}

func parseBody(r io.Reader) ([]parsedParagraph, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []parsedParagraph
		para       parsedParagraph
		run        parsedRun
		inPara     bool
		inParaPr   bool
		inRun      bool
		inRunPr    bool
		inText     bool
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				para = parsedParagraph{}
			case "pPr":
				if inPara && !inRun {
					inParaPr = true
				}
			case "pStyle":
				if inParaPr {
					para.style = attr(t, "val")
				}
			case "jc":
				if inParaPr {
					para.align = alignmentKeyword(attr(t, "val"))
				}
			case "spacing":
				if inParaPr {
					para.spacingBefore = atoi(attr(t, "before"))
					para.spacingAfter = atoi(attr(t, "after"))
				}
			case "tab":
				if inParaPr {
					if pos := atoi(attr(t, "pos")); pos > 0 {
						para.tabStops = append(para.tabStops, pos)
					}
				} else if inRun && !inRunPr {
					run.text += "\t"
				}
			case "r":
				if inPara && !inParaPr {
					inRun = true
					run = parsedRun{}
				}
			case "rPr":
				if inRun {
					inRunPr = true
				}
			case "b":
				if inRunPr {
					run.bold = onOff(attr(t, "val"))
				}
			case "i":
				if inRunPr {
					run.italic = onOff(attr(t, "val"))
				}
			case "u":
				if inRunPr {
					run.underline = attr(t, "val") != "none"
				}
			case "rFonts":
				if inRunPr {
					run.font = attr(t, "ascii")
				}
			case "sz":
				if inRunPr {
					run.sizeHalfPoints = atoi(attr(t, "val"))
				}
			case "t":
				if inRun && !inRunPr {
					inText = true
				}
			}

		case xml.CharData:
			if inText {
				run.text += string(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "rPr":
				inRunPr = false
			case "r":
				if inRun {
					para.runs = append(para.runs, run)
					inRun = false
				}
			case "pPr":
				inParaPr = false
			case "p":
				if inPara {
					paragraphs = append(paragraphs, para)
					inPara = false
				}
			}
		}
	}

	return paragraphs, nil
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// onOff interprets OOXML boolean attributes: absence means on.
func onOff(val string) bool {
	switch val {
	case "0", "false", "off":
		return false
	default:
		return true
	}
}

// alignmentKeyword maps OOXML justification values back onto the keywords
// the analyzer vocabulary uses.
func alignmentKeyword(val string) string {
	switch val {
	case "both", "distribute":
		return "justified"
	case "start":
		return "left"
	case "end":
		return "right"
	default:
		return val
	}
}
