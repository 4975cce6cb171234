package compose

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teachkit/teachkit/internal/docx"
	"github.com/teachkit/teachkit/internal/domain"
)

func answers(n int) []domain.AnswerOption {
	all := []domain.AnswerOption{
		{Option: "A", Text: "first"},
		{Option: "B", Text: "second"},
		{Option: "C", Text: "third"},
		{Option: "D", Text: "fourth"},
	}
	return all[:n]
}

func answerBlock(lt domain.LayoutType, n int) domain.ContentItem {
	return domain.ContentItem{Type: domain.ItemAnswerBlock, LayoutType: lt, Answers: answers(n)}
}

func TestInlineTabSeparation(t *testing.T) {
	out := Format([]domain.ContentItem{answerBlock(domain.LayoutInline, 4)}, domain.DefaultTemplateRules())
	require.Len(t, out, 1)

	p := out[0]
	require.Len(t, p.Runs, 7)

	var texts, tabs int
	for _, r := range p.Runs {
		if r.Tab {
			tabs++
		} else {
			texts++
		}
	}
	assert.Equal(t, 4, texts)
	assert.Equal(t, 3, tabs)
	assert.False(t, p.Runs[len(p.Runs)-1].Tab, "no tab after the last option")
	assert.Equal(t, []int{2880, 5760, 8640}, p.TabStops)
	assert.Equal(t, "A. first", p.Runs[0].Text)
}

func TestTwoLinePairsFourAnswers(t *testing.T) {
	out := Format([]domain.ContentItem{answerBlock(domain.LayoutTwoLine, 4)}, domain.DefaultTemplateRules())
	require.Len(t, out, 2)

	for i, p := range out {
		require.Len(t, p.Runs, 3, "paragraph %d", i)
		assert.True(t, p.Runs[1].Tab)
		assert.Equal(t, []int{4320}, p.TabStops)
	}
	assert.Equal(t, "A. first", out[0].Runs[0].Text)
	assert.Equal(t, "B. second", out[0].Runs[2].Text)
	assert.Equal(t, "C. third", out[1].Runs[0].Text)
	assert.Equal(t, "D. fourth", out[1].Runs[2].Text)
}

func TestTwoLineFallbackUnderFourAnswers(t *testing.T) {
	out := Format([]domain.ContentItem{answerBlock(domain.LayoutTwoLine, 3)}, domain.DefaultTemplateRules())
	require.Len(t, out, 3)

	for _, p := range out {
		require.Len(t, p.Runs, 1)
		assert.False(t, p.Runs[0].Tab)
		assert.Empty(t, p.TabStops)
	}
}

func TestUnknownLayoutDefaultsToFourLine(t *testing.T) {
	rules := domain.DefaultTemplateRules()

	for _, lt := range []domain.LayoutType{"", "stacked"} {
		out := Format([]domain.ContentItem{answerBlock(lt, 2)}, rules)
		require.Len(t, out, 2, "layout %q", lt)
		assert.Equal(t, rules.QuestionLayouts.FourLine.SpacingBefore, out[0].SpacingBefore)
		assert.Equal(t, "A. first", out[0].Runs[0].Text)
		assert.Equal(t, "B. second", out[1].Runs[0].Text)
	}
}

func TestEmptyAnswerBlockEmitsNothing(t *testing.T) {
	out := Format([]domain.ContentItem{
		{Type: domain.ItemAnswerBlock, LayoutType: domain.LayoutInline},
		{Type: domain.ItemParagraph, Content: "after"},
	}, domain.DefaultTemplateRules())

	require.Len(t, out, 1)
	assert.Equal(t, "after", out[0].Runs[0].Text)
}

func TestFormatDeterminism(t *testing.T) {
	items := []domain.ContentItem{
		{Type: domain.ItemHeading, Content: "PART I", Metadata: domain.ItemMetadata{HeadingLevel: 1}},
		{Type: domain.ItemQuestion, Content: "Question 1. Pick one."},
		answerBlock(domain.LayoutTwoLine, 4),
		{Type: domain.ItemParagraph, Content: "Closing remark."},
	}
	rules := domain.DefaultTemplateRules()

	first := Format(items, rules)
	second := Format(items, rules)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two runs over identical input produced different descriptors")
	}
}

func TestEndToEndScenario(t *testing.T) {
	items := []domain.ContentItem{
		{Type: domain.ItemHeading, Content: "PART I"},
		{Type: domain.ItemQuestion, Content: "Q1. What is 2+2?"},
		{
			Type:       domain.ItemAnswerBlock,
			LayoutType: domain.LayoutInline,
			Answers: []domain.AnswerOption{
				{Option: "A", Text: "3"},
				{Option: "B", Text: "4"},
			},
		},
	}

	out := Format(items, domain.DefaultTemplateRules())
	require.Len(t, out, 3)

	heading := out[0]
	assert.Equal(t, docx.AlignCenter, heading.Alignment)
	assert.True(t, heading.Runs[0].Bold)
	assert.Equal(t, 0, heading.HeadingLevel, "no level in metadata leaves the paragraph untagged")
	assert.Equal(t, 28, heading.Runs[0].SizeHalfPoints, "14pt heading renders at 28 half-points")

	question := out[1]
	assert.Equal(t, docx.AlignLeft, question.Alignment)
	assert.True(t, question.Runs[0].Bold)
	assert.Equal(t, 100, question.SpacingBefore)

	answers := out[2]
	require.Len(t, answers.Runs, 3)
	assert.Equal(t, "A. 3", answers.Runs[0].Text)
	assert.True(t, answers.Runs[1].Tab)
	assert.Equal(t, "B. 4", answers.Runs[2].Text)
	assert.Equal(t, 24, answers.Runs[0].SizeHalfPoints)
}

func TestHeadingLevelRange(t *testing.T) {
	rules := domain.DefaultTemplateRules()

	tests := []struct {
		level int
		want  int
	}{
		{0, 0}, {1, 1}, {6, 6}, {7, 0}, {-2, 0},
	}
	for _, tc := range tests {
		out := Format([]domain.ContentItem{{
			Type:     domain.ItemHeading,
			Content:  "H",
			Metadata: domain.ItemMetadata{HeadingLevel: tc.level},
		}}, rules)
		require.Len(t, out, 1)
		if out[0].HeadingLevel != tc.want {
			t.Errorf("metadata level %d carried as %d, want %d", tc.level, out[0].HeadingLevel, tc.want)
		}
	}
}
