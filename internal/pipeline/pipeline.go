// Package pipeline wires the document formatting stages end to end:
// extract, classify and analyze in parallel, compose, render.
package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/teachkit/teachkit/internal/classify"
	"github.com/teachkit/teachkit/internal/compose"
	"github.com/teachkit/teachkit/internal/docx"
	"github.com/teachkit/teachkit/internal/domain"
	"github.com/teachkit/teachkit/internal/log"
	"github.com/teachkit/teachkit/internal/oracle"
	"github.com/teachkit/teachkit/internal/template"
)

// Stats summarizes a formatting run for logs and API responses.
type Stats struct {
	Items      int `json:"items"`
	Paragraphs int `json:"paragraphs"`
}

type Pipeline struct {
	classifier *classify.Classifier
	analyzer   *template.Analyzer
}

func New(o oracle.Oracle) *Pipeline {
	return &Pipeline{
		classifier: classify.New(o),
		analyzer:   template.New(o),
	}
}

// FormatDocument reformats source to match the styling of reference. The
// classifier and analyzer run concurrently; a classification failure on
// any chunk aborts the run, while template analysis degrades to default
// rules on its own.
func (p *Pipeline) FormatDocument(ctx context.Context, source, reference []byte) ([]byte, Stats, error) {
	text, err := docx.ExtractText(source)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("extract source text: %w", err)
	}
	markup, err := docx.ExtractMarkup(reference)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("extract reference markup: %w", err)
	}

	var (
		items []domain.ContentItem
		rules domain.TemplateRules
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var cerr error
		items, cerr = p.classifier.Classify(gctx, text)
		return cerr
	})
	g.Go(func() error {
		rules = p.analyzer.Analyze(gctx, markup)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}

	paragraphs := compose.Format(items, rules)
	log.Logf(log.Detailed, "pipeline: %d items composed into %d paragraphs", len(items), len(paragraphs))

	var buf bytes.Buffer
	if err := docx.Write(&buf, paragraphs); err != nil {
		return nil, Stats{}, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), Stats{Items: len(items), Paragraphs: len(paragraphs)}, nil
}
