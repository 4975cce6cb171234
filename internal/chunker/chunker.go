// Package chunker splits raw document text into bounded-size pieces for
// classification. Blank lines are dropped before grouping, so positions
// inside a chunk do not correspond to original line numbers.
package chunker

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultMaxParagraphs is the chunk size used when the caller passes a
// non-positive limit.
const DefaultMaxParagraphs = 50

// Split breaks text into chunks of up to maxParagraphs non-blank lines,
// strictly in source order, each chunk newline-joined. Empty or all-blank
// input yields no chunks.
func Split(text string, maxParagraphs int) []string {
	if maxParagraphs <= 0 {
		maxParagraphs = DefaultMaxParagraphs
	}

	lines := lo.Filter(strings.Split(text, "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})
	if len(lines) == 0 {
		return nil
	}

	return lo.Map(lo.Chunk(lines, maxParagraphs), func(group []string, _ int) string {
		return strings.Join(group, "\n")
	})
}
