// Package vision extracts tabular data from images of tables via the
// vision oracle and normalizes the generic-column response for callers.
package vision

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/teachkit/teachkit/internal/log"
)

// DefaultMaxColumns bounds the generic Column_1..Column_N schema.
const DefaultMaxColumns = 10

// RawTable is the oracle's response before cleanup: headers in column
// order and rows keyed by generic Column_N placeholders.
type RawTable struct {
	Headers []string            `json:"headers"`
	Data    []map[string]string `json:"data"`
}

// Table is the cleaned result: deduplicated headers and rows keyed by them.
type Table struct {
	Headers []string            `json:"headers"`
	Data    []map[string]string `json:"data"`
}

// Oracle is the vision capability the extractor depends on.
type Oracle interface {
	ExtractTableRaw(ctx context.Context, image []byte, mimeType string, maxColumns int) (*RawTable, error)
}

type Extractor struct {
	oracle     Oracle
	maxColumns int
}

func New(o Oracle, maxColumns int) *Extractor {
	if maxColumns <= 0 {
		maxColumns = DefaultMaxColumns
	}
	return &Extractor{oracle: o, maxColumns: maxColumns}
}

// Extract runs the oracle over the image and normalizes its response:
// empty headers are dropped, duplicate headers are renamed "name_index",
// and generic Column_N row keys are remapped onto the cleaned headers.
func (e *Extractor) Extract(ctx context.Context, image []byte, mimeType string) (*Table, error) {
	raw, err := e.oracle.ExtractTableRaw(ctx, image, mimeType, e.maxColumns)
	if err != nil {
		return nil, fmt.Errorf("extract table from image: %w", err)
	}
	log.Logf(log.Detailed, "vision extraction returned %d headers, %d rows", len(raw.Headers), len(raw.Data))
	return clean(raw, e.maxColumns), nil
}

func clean(raw *RawTable, maxColumns int) *Table {
	headers := dedupeHeaders(lo.Filter(raw.Headers, func(h string, _ int) bool {
		return h != ""
	}))

	rows := make([]map[string]string, len(raw.Data))
	for i, row := range raw.Data {
		cleaned := map[string]string{}
		for col := 1; col <= maxColumns; col++ {
			key := fmt.Sprintf("Column_%d", col)
			value, ok := row[key]
			if !ok {
				continue
			}
			if col <= len(headers) {
				key = headers[col-1]
			}
			cleaned[key] = value
		}
		rows[i] = cleaned
	}

	return &Table{Headers: headers, Data: rows}
}

// dedupeHeaders renames a repeated header to "name_index" so every column
// keeps a distinct key.
func dedupeHeaders(headers []string) []string {
	seen := map[string]bool{}
	out := make([]string, len(headers))
	for i, h := range headers {
		if seen[h] {
			h = fmt.Sprintf("%s_%d", h, i)
		}
		seen[h] = true
		out[i] = h
	}
	return out
}
