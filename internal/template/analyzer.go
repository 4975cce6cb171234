// Package template derives a structured style-rule set from a reference
// document that is already well formatted.
package template

import (
	"context"

	"github.com/teachkit/teachkit/internal/domain"
	"github.com/teachkit/teachkit/internal/log"
	"github.com/teachkit/teachkit/internal/oracle"
)

type Analyzer struct {
	oracle oracle.Oracle
}

func New(o oracle.Oracle) *Analyzer {
	return &Analyzer{oracle: o}
}

// Analyze asks the oracle for per-layout-type style rules and merges the
// partial response over the built-in defaults field by field. Any failure
// degrades to the full default rule set; an un-analyzable template must not
// abort the pipeline.
func (a *Analyzer) Analyze(ctx context.Context, markup string) domain.TemplateRules {
	patch, err := a.oracle.AnalyzeTemplate(ctx, markup)
	if err != nil {
		log.Logf(log.Basic, "template analysis failed, using default rules: %v", err)
		return domain.DefaultTemplateRules()
	}
	return domain.MergeRules(domain.DefaultTemplateRules(), patch)
}
