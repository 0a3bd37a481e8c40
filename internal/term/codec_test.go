package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitValues(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want []string
	}{
		{"single", "cat", []string{"cat"}},
		{"two", "chat; félin", []string{"chat", "félin"}},
		{"blank cell", "  ", nil},
		{"empty piece dropped", "chat; ; félin", []string{"chat", "félin"}},
		{"semicolon without space is kept", "a;b", []string{"a;b"}},
		{"pieces kept verbatim", " cat; dog ", []string{" cat", "dog "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitValues(tt.cell))
		})
	}
}

func TestJoinValues(t *testing.T) {
	assert.Equal(t, "chat; félin", JoinValues([]string{"chat", "félin"}))
	assert.Equal(t, "", JoinValues(nil))
}

func TestJoinSplit_SeparatorCollisionIsLossy(t *testing.T) {
	values := []string{"salt; pepper", "spice"}

	got := SplitValues(JoinValues(values))

	assert.Equal(t, []string{"salt", "pepper", "spice"}, got)
}

func TestFields_Record(t *testing.T) {
	var f Fields
	f.Add("definition_en", "first")
	f.Add("en", "cat")
	f.Add("definition_en", "second")
	f.Add("subjectField", "")

	assert.Equal(t, Record{
		{Column: "definition_en", Value: "first; second"},
		{Column: "en", Value: "cat"},
	}, f.Record())
}
