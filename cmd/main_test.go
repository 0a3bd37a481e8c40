package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtuoc/MTUOC-TBX/internal/convert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TBXCONV_CONFIG",
		"TBXCONV_LOG_LEVEL",
		"TBXCONV_LOG_FILE",
		"TBXCONV_INPUT_SHEET",
		"TBXCONV_OUTPUT_SHEET",
		"TBXCONV_CHECK_LANG_TAGS",
		"TBXCONV_CHECK_CONTENT_LANG",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootHasOneCommandPerConverter(t *testing.T) {
	root := newRootCmd()
	for _, c := range convert.Converters {
		cmd, _, err := root.Find([]string{c.Name})
		require.NoError(t, err)
		assert.Equal(t, c.Name, cmd.Name())
	}
}

func TestConvert_DefaultOutputPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "glossary.tsv")
	require.NoError(t, os.WriteFile(input, []byte("en\tfr\ncat\tchat\n"), 0o644))

	out, err := execute(t, "tsv2tbx", "-i", input, "--log-level", "error")
	require.NoError(t, err)

	output := filepath.Join(dir, "glossary.tbx")
	assert.Contains(t, out, output)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<langSet xml:lang="fr">`)
}

func TestConvert_ExplicitOutputAndLogFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "glossary.tsv")
	output := filepath.Join(dir, "terms.tbx")
	logFile := filepath.Join(dir, "logs", "tbxconv.log")
	require.NoError(t, os.WriteFile(input, []byte("en\ncat\n"), 0o644))

	_, err := execute(t, "tsv2tbx", "--input", input, "--output", output, "--log-file", logFile)
	require.NoError(t, err)

	_, err = os.Stat(output)
	require.NoError(t, err)
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "TBX file successfully written to")
}

func TestConvert_InputRequired(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "tbx2tsv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"input"`)
}

func TestConvert_MissingInput(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := execute(t, "tbx2excel", "-i", filepath.Join(dir, "missing.tbx"), "--log-level", "error")
	require.Error(t, err)
	assert.True(t, convert.IsErrorType(err, convert.ErrFileNotFound))

	_, statErr := os.Stat(filepath.Join(dir, "missing.xlsx"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvert_InvalidConfig(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, "tsv2tbx", "-i", "x.tsv", "--log-level", "loud")
	require.Error(t, err)
	assert.True(t, convert.IsErrorType(err, convert.ErrValidation))
}
