package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestMergeRulesFieldWise(t *testing.T) {
	patch := &RulesPatch{
		QuestionLayouts: LayoutPatches{
			Inline: &StylePatch{FontName: ptr("Arial")},
		},
	}

	merged := MergeRules(DefaultTemplateRules(), patch)

	// Present field overrides, absent fields keep the default.
	assert.Equal(t, "Arial", merged.QuestionLayouts.Inline.FontName)
	assert.Equal(t, float64(12), merged.QuestionLayouts.Inline.FontSize)
	assert.Equal(t, []int{2880, 5760, 8640}, merged.QuestionLayouts.Inline.TabStops)

	// Untouched layout types stay wholly default.
	assert.Equal(t, DefaultTemplateRules().QuestionLayouts.TwoLine, merged.QuestionLayouts.TwoLine)
	assert.Equal(t, DefaultTemplateRules().HeadingFormats, merged.HeadingFormats)
}

func TestMergeRulesFullPatch(t *testing.T) {
	patch := &RulesPatch{
		QuestionLayouts: LayoutPatches{
			TwoLine: &StylePatch{
				FontSize:      ptr(11.0),
				SpacingBefore: ptr(80.0),
				Alignment:     ptr("justified"),
				TabStops:      []float64{3600},
			},
		},
		HeadingFormats:   &ReducedPatch{Alignment: ptr("left"), SpacingAfter: ptr(240.0)},
		ParagraphFormats: &ReducedPatch{FontName: ptr("Calibri")},
	}

	merged := MergeRules(DefaultTemplateRules(), patch)

	two := merged.QuestionLayouts.TwoLine
	assert.Equal(t, "Times New Roman", two.FontName)
	assert.Equal(t, float64(11), two.FontSize)
	assert.Equal(t, 80, two.SpacingBefore)
	assert.Equal(t, 100, two.SpacingAfter)
	assert.Equal(t, AlignJustified, two.Alignment)
	assert.Equal(t, []int{3600}, two.TabStops)

	assert.Equal(t, AlignLeft, merged.HeadingFormats.Alignment)
	assert.Equal(t, 240, merged.HeadingFormats.SpacingAfter)
	assert.Equal(t, "Calibri", merged.ParagraphFormats.FontName)
	assert.Equal(t, float64(12), merged.ParagraphFormats.FontSize)
}

func TestMergeRulesNilPatch(t *testing.T) {
	assert.Equal(t, DefaultTemplateRules(), MergeRules(DefaultTemplateRules(), nil))
}

func TestStyleFallsBackToFourLine(t *testing.T) {
	rules := DefaultTemplateRules()

	tests := []struct {
		lt   LayoutType
		want LayoutStyle
	}{
		{LayoutInline, rules.QuestionLayouts.Inline},
		{LayoutTwoLine, rules.QuestionLayouts.TwoLine},
		{LayoutFourLine, rules.QuestionLayouts.FourLine},
		{"", rules.QuestionLayouts.FourLine},
		{"diagonal", rules.QuestionLayouts.FourLine},
	}

	for _, tc := range tests {
		if got := rules.Style(tc.lt); !assert.ObjectsAreEqual(tc.want, got) {
			t.Errorf("Style(%q) = %+v, want %+v", tc.lt, got, tc.want)
		}
	}
}
