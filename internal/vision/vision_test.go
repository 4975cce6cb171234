package vision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOracle struct {
	raw *RawTable
	err error
}

func (s *stubOracle) ExtractTableRaw(context.Context, []byte, string, int) (*RawTable, error) {
	return s.raw, s.err
}

func TestExtractRemapsGenericColumns(t *testing.T) {
	e := New(&stubOracle{raw: &RawTable{
		Headers: []string{"Name", "Score"},
		Data: []map[string]string{
			{"Column_1": "An", "Column_2": "9.5", "Column_3": "ignored overflow"},
			{"Column_1": "Binh", "Column_2": ""},
		},
	}}, 2)

	table, err := e.Extract(context.Background(), []byte("png"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Score"}, table.Headers)
	require.Len(t, table.Data, 2)
	assert.Equal(t, map[string]string{"Name": "An", "Score": "9.5"}, table.Data[0])
	assert.Equal(t, map[string]string{"Name": "Binh", "Score": ""}, table.Data[1])
}

func TestExtractDropsEmptyAndRenamesDuplicateHeaders(t *testing.T) {
	e := New(&stubOracle{raw: &RawTable{
		Headers: []string{"Name", "", "Name", "Note"},
		Data: []map[string]string{
			{"Column_1": "a", "Column_2": "b", "Column_3": "c"},
		},
	}}, 10)

	table, err := e.Extract(context.Background(), nil, "image/png")
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Name_1", "Note"}, table.Headers)
	assert.Equal(t, map[string]string{"Name": "a", "Name_1": "b", "Note": "c"}, table.Data[0])
}

func TestExtractKeepsGenericKeyBeyondHeaders(t *testing.T) {
	e := New(&stubOracle{raw: &RawTable{
		Headers: []string{"Only"},
		Data:    []map[string]string{{"Column_1": "x", "Column_2": "y"}},
	}}, 2)

	table, err := e.Extract(context.Background(), nil, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Only": "x", "Column_2": "y"}, table.Data[0])
}

func TestExtractPropagatesOracleFailure(t *testing.T) {
	e := New(&stubOracle{err: errors.New("vision quota exceeded")}, 0)

	_, err := e.Extract(context.Background(), nil, "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract table from image")
}
