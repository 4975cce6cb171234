package classify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teachkit/teachkit/internal/domain"
)

// stubOracle classifies every line of a chunk as a paragraph carrying the
// line text, and fails on chunks containing failOn.
type stubOracle struct {
	failOn string
	calls  atomic.Int32
}

func (s *stubOracle) ClassifyChunk(_ context.Context, chunk string) ([]domain.ContentItem, error) {
	s.calls.Add(1)
	if s.failOn != "" && strings.Contains(chunk, s.failOn) {
		return nil, errors.New("oracle refused")
	}
	var items []domain.ContentItem
	for _, line := range strings.Split(chunk, "\n") {
		items = append(items, domain.ContentItem{Type: domain.ItemParagraph, Content: line})
	}
	return items, nil
}

func (s *stubOracle) AnalyzeTemplate(context.Context, string) (*domain.RulesPatch, error) {
	return nil, errors.New("not a template oracle")
}

func TestClassifyPreservesChunkOrder(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("line-%02d", i))
	}

	o := &stubOracle{}
	c := NewWithChunkSize(o, 3)
	items, err := c.Classify(context.Background(), strings.Join(lines, "\n"))
	require.NoError(t, err)
	require.Len(t, items, 10)

	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("line-%02d", i), item.Content)
	}
	assert.Equal(t, int32(4), o.calls.Load(), "10 lines at size 3 means 4 chunks")
}

func TestClassifyAllOrNothing(t *testing.T) {
	o := &stubOracle{failOn: "line-07"}
	c := NewWithChunkSize(o, 2)

	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, fmt.Sprintf("line-%02d", i))
	}

	items, err := c.Classify(context.Background(), strings.Join(lines, "\n"))
	assert.Nil(t, items, "no partial results on failure")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classify chunk 4/5")
}

func TestClassifyEmptyDocument(t *testing.T) {
	o := &stubOracle{}
	c := New(o)

	items, err := c.Classify(context.Background(), "\n  \n")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, o.calls.Load(), "no oracle calls for a blank document")
}
