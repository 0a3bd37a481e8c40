package file

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{"xlsx to tbx", "glossary.xlsx", ".tbx", "glossary.tbx"},
		{"without dot", filepath.Join("data", "terms.tsv"), "tbx", filepath.Join("data", "terms.tbx")},
		{"no extension", filepath.Join("data", "terms"), ".xlsx", filepath.Join("data", "terms.xlsx")},
		{"hidden file", ".terms", ".tbx", ".terms.tbx"},
		{"multiple dots", "a.b.xml", ".tbx", "a.b.tbx"},
		{"empty", "", ".tbx", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplaceExt(tt.path, tt.ext))
		})
	}
}

func TestSamePath(t *testing.T) {
	assert.True(t, SamePath("a/b.tbx", "a/./b.tbx"))
	assert.False(t, SamePath("a/b.tbx", "a/c.tbx"))
}
