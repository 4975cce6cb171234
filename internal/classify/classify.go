// Package classify turns raw document text into an ordered sequence of
// typed content items by fanning chunks out to the classification oracle.
package classify

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/teachkit/teachkit/internal/chunker"
	"github.com/teachkit/teachkit/internal/domain"
	"github.com/teachkit/teachkit/internal/log"
	"github.com/teachkit/teachkit/internal/oracle"
)

type Classifier struct {
	oracle        oracle.Oracle
	maxParagraphs int
}

func New(o oracle.Oracle) *Classifier {
	return &Classifier{oracle: o, maxParagraphs: chunker.DefaultMaxParagraphs}
}

// NewWithChunkSize is used by tests that need small chunks.
func NewWithChunkSize(o oracle.Oracle, maxParagraphs int) *Classifier {
	return &Classifier{oracle: o, maxParagraphs: maxParagraphs}
}

// Classify splits text into chunks and classifies them concurrently. Each
// chunk depends only on its own content, so results are joined by slot and
// flattened in chunk order. The join is all-or-nothing: the first failing
// chunk cancels the rest and fails the whole classification.
func (c *Classifier) Classify(ctx context.Context, text string) ([]domain.ContentItem, error) {
	chunks := chunker.Split(text, c.maxParagraphs)
	if len(chunks) == 0 {
		return nil, nil
	}
	log.Logf(log.Basic, "classifying content in %d chunks", len(chunks))

	results := make([][]domain.ContentItem, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			items, err := c.oracle.ClassifyChunk(gctx, chunk)
			if err != nil {
				return fmt.Errorf("classify chunk %d/%d: %w", i+1, len(chunks), err)
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := lo.Flatten(results)
	log.Logf(log.Detailed, "classified %d content items", len(items))
	return items, nil
}
