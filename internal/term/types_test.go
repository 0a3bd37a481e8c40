package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLangValues_OrderAndMultiplicity(t *testing.T) {
	var lv LangValues
	lv.Add("fr", "chat")
	lv.Add("en", "cat")
	lv.Add("fr", "félin")
	lv.Add("de", "   ")
	lv.Add("de", "")

	assert.Equal(t, []string{"fr", "en"}, lv.Languages())
	assert.Equal(t, []string{"chat", "félin"}, lv.Values("fr"))
	assert.Equal(t, 2, lv.Len())
	assert.NotContains(t, lv.Languages(), "de")
	assert.Nil(t, lv.Values("de"))
}

func TestLangValues_ValuesIsACopy(t *testing.T) {
	var lv LangValues
	lv.Add("en", "cat")

	got := lv.Values("en")
	got[0] = "dog"

	assert.Equal(t, []string{"cat"}, lv.Values("en"))
}

func TestEntry_BlankValuesNeverStored(t *testing.T) {
	var e Entry
	assert.True(t, e.IsEmpty())

	e.AddSubjectField(" ")
	e.AddExternalCrossReference("")
	e.AddTerm("en", "\t")
	e.AddDefinition("en", "")
	assert.True(t, e.IsEmpty())

	e.AddSubjectField("zoology")
	e.AddExternalCrossReference("IATE:123")
	assert.False(t, e.IsEmpty())
	assert.Equal(t, []string{"zoology"}, e.SubjectFields)
	assert.Equal(t, []string{"IATE:123"}, e.ExternalCrossReferences)
}

func TestRecord_ColumnsAndMap(t *testing.T) {
	r := Record{
		{Column: "en", Value: "cat"},
		{Column: "fr", Value: "chat"},
	}

	assert.Equal(t, []string{"en", "fr"}, r.Columns())
	assert.Equal(t, map[string]string{"en": "cat", "fr": "chat"}, r.Map())
}
