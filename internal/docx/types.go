// Package docx reads text and style markup out of WordprocessingML
// documents and serializes paragraph descriptors back into them.
package docx

import "errors"

// ErrNotDocx is returned when input bytes are not a docx package.
var ErrNotDocx = errors.New("not a docx document")

// Alignment is a paragraph justification keyword. The writer maps
// "justified" to the OOXML value "both".
type Alignment string

const (
	AlignLeft      Alignment = "left"
	AlignCenter    Alignment = "center"
	AlignRight     Alignment = "right"
	AlignJustified Alignment = "justified"
)

// Run is one styled text segment. A Tab run renders as a tab marker and
// ignores Text.
type Run struct {
	Text           string
	Tab            bool
	Font           string
	SizeHalfPoints int
	Bold           bool
	Italic         bool
	Underline      bool
}

// Paragraph is one ordered output paragraph. Spacing values are twips;
// HeadingLevel 1-6 tags the paragraph with the matching heading style,
// 0 leaves it unstyled.
type Paragraph struct {
	Runs          []Run
	Alignment     Alignment
	SpacingBefore int
	SpacingAfter  int
	TabStops      []int
	HeadingLevel  int
}
