package tabular

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mtuoc/MTUOC-TBX/internal/term"
)

func workbook(t *testing.T, sheet string, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if sheet != DefaultSheet {
		require.NoError(t, f.SetSheetName(DefaultSheet, sheet))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadXLSX_FirstSheet(t *testing.T) {
	buf := workbook(t, "Terms", [][]string{
		{"en", "fr", "definition_en"},
		{"cat", "chat; félin", "a small domesticated carnivore"},
		{"dog"},
	})

	table, err := ReadXLSX(buf, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "fr", "definition_en"}, table.Columns)
	assert.Equal(t, [][]string{
		{"cat", "chat; félin", "a small domesticated carnivore"},
		{"dog", "", ""},
	}, table.Cells())
}

func TestReadXLSX_NamedSheetMissing(t *testing.T) {
	buf := workbook(t, DefaultSheet, [][]string{{"en"}, {"cat"}})

	_, err := ReadXLSX(buf, "Nope")
	assert.Error(t, err)
}

func TestReadXLSX_EmptySheet(t *testing.T) {
	buf := workbook(t, DefaultSheet, nil)

	_, err := ReadXLSX(buf, "")
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	_, err := ReadXLSX(bytes.NewBufferString("en\tfr\n"), "")
	assert.Error(t, err)
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	table := NewTable([]term.Record{
		{{Column: "definition_en", Value: "first; second"}, {Column: "en", Value: "cat"}},
		{{Column: "fr", Value: "chien"}},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, table, "Glossary"))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{"Glossary"}, f.GetSheetList())
	require.NoError(t, f.Close())

	again, err := ReadXLSX(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, table, again)
}

func TestWriteXLSX_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, NewTable(nil), ""))

	_, err := ReadXLSX(&buf, "")
	assert.ErrorIs(t, err, ErrNoHeader)
}
