package template

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teachkit/teachkit/internal/domain"
)

type stubOracle struct {
	patch *domain.RulesPatch
	err   error
}

func (s *stubOracle) ClassifyChunk(context.Context, string) ([]domain.ContentItem, error) {
	return nil, errors.New("not a classification oracle")
}

func (s *stubOracle) AnalyzeTemplate(context.Context, string) (*domain.RulesPatch, error) {
	return s.patch, s.err
}

func strPtr(s string) *string { return &s }

func TestAnalyzeMergesPatchOverDefaults(t *testing.T) {
	a := New(&stubOracle{patch: &domain.RulesPatch{
		QuestionLayouts: domain.LayoutPatches{
			Inline: &domain.StylePatch{FontName: strPtr("Arial")},
		},
	}})

	rules := a.Analyze(context.Background(), "<p>reference</p>")

	assert.Equal(t, "Arial", rules.QuestionLayouts.Inline.FontName)
	assert.Equal(t, float64(12), rules.QuestionLayouts.Inline.FontSize)
	assert.Equal(t, domain.DefaultTemplateRules().QuestionLayouts.FourLine, rules.QuestionLayouts.FourLine)
}

func TestAnalyzeFailureFallsBackToDefaults(t *testing.T) {
	a := New(&stubOracle{err: errors.New("oracle unreachable")})

	rules := a.Analyze(context.Background(), "<p>reference</p>")

	assert.Equal(t, domain.DefaultTemplateRules(), rules)
}

func TestAnalyzeEmptyPatchKeepsDefaults(t *testing.T) {
	a := New(&stubOracle{patch: &domain.RulesPatch{}})

	rules := a.Analyze(context.Background(), "")

	assert.Equal(t, domain.DefaultTemplateRules(), rules)
}
