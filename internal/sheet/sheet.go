// Package sheet reads tabular data out of xlsx workbooks. Only the first
// worksheet is consulted; its first row is the header row.
package sheet

import (
	"bytes"
	"fmt"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

// Headers returns the first row of the first sheet, in column order,
// duplicates included. Callers that present a header picker dedupe with
// lo.Uniq.
func Headers(data []byte) ([]string, error) {
	rows, err := firstSheetRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Rows projects the data rows onto the selected headers. A selected header
// that does not exist in the header row is skipped; cells missing at the
// end of a short row are omitted from that row's map.
func Rows(data []byte, selected []string) ([]map[string]string, error) {
	rows, err := firstSheetRows(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := map[string]string{}
		for _, header := range selected {
			idx := lo.IndexOf(headers, header)
			if idx < 0 || idx >= len(row) {
				continue
			}
			record[header] = row[idx]
		}
		out = append(out, record)
	}
	return out, nil
}

func firstSheetRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", name, err)
	}
	return rows, nil
}
