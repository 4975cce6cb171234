package pipeline

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teachkit/teachkit/internal/docx"
	"github.com/teachkit/teachkit/internal/domain"
)

type stubOracle struct {
	items       []domain.ContentItem
	classifyErr error
	patch       *domain.RulesPatch
	analyzeErr  error
}

func (s *stubOracle) ClassifyChunk(context.Context, string) ([]domain.ContentItem, error) {
	return s.items, s.classifyErr
}

func (s *stubOracle) AnalyzeTemplate(context.Context, string) (*domain.RulesPatch, error) {
	return s.patch, s.analyzeErr
}

func sampleDocx(t *testing.T, lines ...string) []byte {
	t.Helper()
	paragraphs := make([]docx.Paragraph, len(lines))
	for i, line := range lines {
		paragraphs[i] = docx.Paragraph{Runs: []docx.Run{{Text: line}}}
	}
	var buf bytes.Buffer
	require.NoError(t, docx.Write(&buf, paragraphs))
	return buf.Bytes()
}

func TestFormatDocument(t *testing.T) {
	source := sampleDocx(t, "Chapter Review", "1. What is 2+2?")
	reference := sampleDocx(t, "Reference styling")

	o := &stubOracle{items: []domain.ContentItem{
		{Type: domain.ItemHeading, Content: "Chapter Review"},
		{Type: domain.ItemQuestion, Content: "1. What is 2+2?"},
	}}

	out, stats, err := New(o).FormatDocument(context.Background(), source, reference)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Items)
	assert.Equal(t, stats.Paragraphs, 2)

	text, err := docx.ExtractText(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(text, "Chapter Review"))
	assert.True(t, strings.Contains(text, "1. What is 2+2?"))
}

func TestFormatDocumentClassifierFailureIsFatal(t *testing.T) {
	source := sampleDocx(t, "some text")
	reference := sampleDocx(t, "styling")

	o := &stubOracle{classifyErr: errors.New("model unavailable")}

	_, _, err := New(o).FormatDocument(context.Background(), source, reference)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestFormatDocumentAnalyzerFailureDegrades(t *testing.T) {
	source := sampleDocx(t, "some text")
	reference := sampleDocx(t, "styling")

	o := &stubOracle{
		items:      []domain.ContentItem{{Type: domain.ItemParagraph, Content: "some text"}},
		analyzeErr: errors.New("schema mismatch"),
	}

	out, stats, err := New(o).FormatDocument(context.Background(), source, reference)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Items)
	assert.NotEmpty(t, out)
}

func TestFormatDocumentRejectsNonDocx(t *testing.T) {
	_, _, err := New(&stubOracle{}).FormatDocument(context.Background(), []byte("plain text"), sampleDocx(t, "x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, docx.ErrNotDocx)
}
