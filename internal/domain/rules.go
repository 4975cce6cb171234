package domain

// Alignment is a paragraph alignment keyword as emitted by the oracle.
type Alignment string

const (
	AlignLeft      Alignment = "left"
	AlignCenter    Alignment = "center"
	AlignRight     Alignment = "right"
	AlignJustified Alignment = "justified"
)

// LayoutStyle is a named formatting profile for one answer layout type.
// Spacing values are in twips (1 pt = 20 twips); font size is in points.
type LayoutStyle struct {
	FontName               string    `json:"fontName"`
	FontSize               float64   `json:"fontSize"`
	SpacingBefore          int       `json:"spacingBefore"`
	SpacingAfter           int       `json:"spacingAfter"`
	Alignment              Alignment `json:"alignment"`
	TabStops               []int     `json:"tabStops,omitempty"`
	IncludesQuestionNumber bool      `json:"includesQuestionNumber,omitempty"`
}

// ReducedStyle is the restricted profile used for headings and plain
// paragraphs; it carries no tab stops or spacing-before.
type ReducedStyle struct {
	FontName     string    `json:"fontName"`
	FontSize     float64   `json:"fontSize"`
	Alignment    Alignment `json:"alignment,omitempty"`
	SpacingAfter int       `json:"spacingAfter"`
}

// QuestionLayouts holds one style per layout type. All three entries are
// always populated; inference gaps are backfilled from the defaults.
type QuestionLayouts struct {
	Inline   LayoutStyle `json:"inline"`
	TwoLine  LayoutStyle `json:"two_line"`
	FourLine LayoutStyle `json:"four_line"`
}

// TemplateRules aggregates every style the formatter needs.
type TemplateRules struct {
	QuestionLayouts  QuestionLayouts `json:"questionLayouts"`
	HeadingFormats   ReducedStyle    `json:"headingFormats"`
	ParagraphFormats ReducedStyle    `json:"paragraphFormats"`
}

// Style returns the layout style for lt. Unknown or missing layout types
// resolve to the four-line style.
func (r TemplateRules) Style(lt LayoutType) LayoutStyle {
	switch lt {
	case LayoutInline:
		return r.QuestionLayouts.Inline
	case LayoutTwoLine:
		return r.QuestionLayouts.TwoLine
	default:
		return r.QuestionLayouts.FourLine
	}
}

// DefaultTemplateRules returns the built-in fallback rule set. Every call
// returns a fresh value so callers may merge into it freely.
func DefaultTemplateRules() TemplateRules {
	return TemplateRules{
		QuestionLayouts: QuestionLayouts{
			Inline: LayoutStyle{
				FontName:      "Times New Roman",
				FontSize:      12,
				SpacingBefore: 100,
				SpacingAfter:  200,
				Alignment:     AlignLeft,
				TabStops:      []int{2880, 5760, 8640},
			},
			TwoLine: LayoutStyle{
				FontName:      "Times New Roman",
				FontSize:      12,
				SpacingBefore: 50,
				SpacingAfter:  100,
				Alignment:     AlignLeft,
				TabStops:      []int{4320},
			},
			FourLine: LayoutStyle{
				FontName:      "Times New Roman",
				FontSize:      12,
				SpacingBefore: 50,
				SpacingAfter:  100,
				Alignment:     AlignLeft,
			},
		},
		HeadingFormats: ReducedStyle{
			FontName:     "Times New Roman",
			FontSize:     14,
			Alignment:    AlignCenter,
			SpacingAfter: 300,
		},
		ParagraphFormats: ReducedStyle{
			FontName:     "Times New Roman",
			FontSize:     12,
			SpacingAfter: 200,
		},
	}
}
