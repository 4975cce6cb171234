package domain

// StylePatch is a partial LayoutStyle as decoded from a template-analysis
// response. Pointer fields distinguish "absent" from zero values so the
// merge can be field-wise.
type StylePatch struct {
	FontName      *string   `json:"fontName,omitempty"`
	FontSize      *float64  `json:"fontSize,omitempty"`
	SpacingBefore *float64  `json:"spacingBefore,omitempty"`
	SpacingAfter  *float64  `json:"spacingAfter,omitempty"`
	Alignment     *string   `json:"alignment,omitempty"`
	TabStops      []float64 `json:"tabStops,omitempty"`
}

// ReducedPatch is a partial ReducedStyle.
type ReducedPatch struct {
	FontName     *string  `json:"fontName,omitempty"`
	FontSize     *float64 `json:"fontSize,omitempty"`
	Alignment    *string  `json:"alignment,omitempty"`
	SpacingAfter *float64 `json:"spacingAfter,omitempty"`
}

// LayoutPatches mirrors QuestionLayouts with every entry optional.
type LayoutPatches struct {
	Inline   *StylePatch `json:"inline,omitempty"`
	TwoLine  *StylePatch `json:"two_line,omitempty"`
	FourLine *StylePatch `json:"four_line,omitempty"`
}

// RulesPatch is the raw structured template-analysis response. Every field
// the oracle filled in overrides the corresponding default; absent fields
// keep the default value.
type RulesPatch struct {
	QuestionLayouts  LayoutPatches `json:"questionLayouts"`
	HeadingFormats   *ReducedPatch `json:"headingFormats,omitempty"`
	ParagraphFormats *ReducedPatch `json:"paragraphFormats,omitempty"`
}

// MergeRules applies patch over base field by field and returns the result.
// A nil patch returns base unchanged.
func MergeRules(base TemplateRules, patch *RulesPatch) TemplateRules {
	if patch == nil {
		return base
	}
	base.QuestionLayouts.Inline = mergeStyle(base.QuestionLayouts.Inline, patch.QuestionLayouts.Inline)
	base.QuestionLayouts.TwoLine = mergeStyle(base.QuestionLayouts.TwoLine, patch.QuestionLayouts.TwoLine)
	base.QuestionLayouts.FourLine = mergeStyle(base.QuestionLayouts.FourLine, patch.QuestionLayouts.FourLine)
	base.HeadingFormats = mergeReduced(base.HeadingFormats, patch.HeadingFormats)
	base.ParagraphFormats = mergeReduced(base.ParagraphFormats, patch.ParagraphFormats)
	return base
}

func mergeStyle(base LayoutStyle, p *StylePatch) LayoutStyle {
	if p == nil {
		return base
	}
	if p.FontName != nil {
		base.FontName = *p.FontName
	}
	if p.FontSize != nil {
		base.FontSize = *p.FontSize
	}
	if p.SpacingBefore != nil {
		base.SpacingBefore = int(*p.SpacingBefore)
	}
	if p.SpacingAfter != nil {
		base.SpacingAfter = int(*p.SpacingAfter)
	}
	if p.Alignment != nil {
		base.Alignment = Alignment(*p.Alignment)
	}
	if len(p.TabStops) > 0 {
		stops := make([]int, len(p.TabStops))
		for i, s := range p.TabStops {
			stops[i] = int(s)
		}
		base.TabStops = stops
	}
	return base
}

func mergeReduced(base ReducedStyle, p *ReducedPatch) ReducedStyle {
	if p == nil {
		return base
	}
	if p.FontName != nil {
		base.FontName = *p.FontName
	}
	if p.FontSize != nil {
		base.FontSize = *p.FontSize
	}
	if p.Alignment != nil {
		base.Alignment = Alignment(*p.Alignment)
	}
	if p.SpacingAfter != nil {
		base.SpacingAfter = int(*p.SpacingAfter)
	}
	return base
}
