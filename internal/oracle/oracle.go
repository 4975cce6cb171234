// Package oracle defines the capability boundary to the external
// structured-text-understanding service. The pipeline depends on this
// interface only, so the deterministic stages can be exercised with a stub.
package oracle

import (
	"context"

	"github.com/teachkit/teachkit/internal/domain"
)

// Oracle is the structured-output contract both pipeline branches rely on.
// Implementations are stateless request/response clients; results are
// trusted verbatim once the response decodes.
type Oracle interface {
	// ClassifyChunk maps one text chunk onto a sequence of typed content
	// items. A transport failure or malformed response fails the call.
	ClassifyChunk(ctx context.Context, chunk string) ([]domain.ContentItem, error)

	// AnalyzeTemplate inspects a reference document, rendered as markup
	// preserving inline emphasis, and returns the partial style rules it
	// could infer. Callers merge the patch over the built-in defaults.
	AnalyzeTemplate(ctx context.Context, markup string) (*domain.RulesPatch, error)
}
