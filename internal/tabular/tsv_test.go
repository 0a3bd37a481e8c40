package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestReadTSV(t *testing.T) {
	input := "\uFEFFen\tfr\tdefinition_en\n" +
		"cat\tchat; félin\ta small domesticated carnivore\n" +
		"\n" +
		"dog\n" +
		"\t\t\n"

	table, err := ReadTSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "fr", "definition_en"}, table.Columns)
	assert.Equal(t, [][]string{
		{"cat", "chat; félin", "a small domesticated carnivore"},
		{"dog", "", ""},
	}, table.Cells())
}

func TestReadTSV_UTF16WithBOM(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte("en\tca\ncat\tgat\n"))
	require.NoError(t, err)

	table, err := ReadTSV(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "ca"}, table.Columns)
	assert.Equal(t, [][]string{{"cat", "gat"}}, table.Cells())
}

func TestReadTSV_HeaderOnly(t *testing.T) {
	table, err := ReadTSV(strings.NewReader("en\tfr\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestReadTSV_Empty(t *testing.T) {
	_, err := ReadTSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadTSV_ExtraFields(t *testing.T) {
	_, err := ReadTSV(strings.NewReader("en\tfr\ncat\tchat\tstray\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	table, err := ReadTSV(strings.NewReader("en\tfr\ncat\tchat\t\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"cat", "chat"}}, table.Cells())
}

func TestWriteTSV_RoundTrip(t *testing.T) {
	table, err := ReadTSV(strings.NewReader("en\tsubjectField\ncat\tzoology\n\tbotany\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, table))
	assert.Equal(t, "en\tsubjectField\ncat\tzoology\n\tbotany\n", buf.String())

	again, err := ReadTSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, again)
}

func TestWriteTSV_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, NewTable(nil)))
	assert.Empty(t, buf.String())
}

func TestReadTSV_InvalidUTF8(t *testing.T) {
	_, err := ReadTSV(strings.NewReader("en\tfr\ncat\tf\xe9lin\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2, field 2: invalid UTF-8")

	_, err = ReadTSV(strings.NewReader("\uFEFFen\tfr\ncat\tf\xe9lin\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid UTF-8")
}
