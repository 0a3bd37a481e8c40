// Package term holds the in-memory terminology model shared by every
// converter: one Entry per concept and the flat Record used on the
// tabular side.
package term

import "strings"

// LangValues is an insertion-ordered mapping from language code to values.
// A language appears once; repeated values for it accumulate in order.
type LangValues struct {
	langs  []string
	values map[string][]string
}

// Add appends value under lang. Blank values are dropped.
func (lv *LangValues) Add(lang, value string) {
	if isBlank(value) {
		return
	}
	if lv.values == nil {
		lv.values = make(map[string][]string)
	}
	if _, ok := lv.values[lang]; !ok {
		lv.langs = append(lv.langs, lang)
	}
	lv.values[lang] = append(lv.values[lang], value)
}

// Languages returns language codes in insertion order.
func (lv LangValues) Languages() []string {
	return append([]string(nil), lv.langs...)
}

// Values returns the values for lang, or nil.
func (lv LangValues) Values(lang string) []string {
	return append([]string(nil), lv.values[lang]...)
}

// Len returns the number of languages.
func (lv LangValues) Len() int {
	return len(lv.langs)
}

// Entry is one terminology concept.
type Entry struct {
	Terms                   LangValues
	Definitions             LangValues
	SubjectFields           []string
	ExternalCrossReferences []string
}

func (e *Entry) AddTerm(lang, value string) {
	e.Terms.Add(lang, value)
}

func (e *Entry) AddDefinition(lang, value string) {
	e.Definitions.Add(lang, value)
}

func (e *Entry) AddSubjectField(value string) {
	if !isBlank(value) {
		e.SubjectFields = append(e.SubjectFields, value)
	}
}

func (e *Entry) AddExternalCrossReference(value string) {
	if !isBlank(value) {
		e.ExternalCrossReferences = append(e.ExternalCrossReferences, value)
	}
}

// IsEmpty reports whether the entry carries no data at all.
func (e Entry) IsEmpty() bool {
	return e.Terms.Len() == 0 &&
		e.Definitions.Len() == 0 &&
		len(e.SubjectFields) == 0 &&
		len(e.ExternalCrossReferences) == 0
}

// Field is one named cell of a flat record.
type Field struct {
	Column string
	Value  string
}

// Record is a flat row: column name to single string, in column order.
type Record []Field

// Columns returns the column names in order.
func (r Record) Columns() []string {
	cols := make([]string, len(r))
	for i, f := range r {
		cols[i] = f.Column
	}
	return cols
}

// Map returns the record as a plain map.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r))
	for _, f := range r {
		m[f.Column] = f.Value
	}
	return m
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
