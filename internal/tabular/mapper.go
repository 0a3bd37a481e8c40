// Package tabular maps flat rows to terminology entries and back, and reads
// and writes the spreadsheet and tab-separated files that carry them.
//
// Column names follow one convention:
//
//	definition_<lang>       definitions for <lang>
//	externalCrossReference  language-neutral cross-references
//	subjectField            language-neutral subject fields
//	anything else           terms for the language named by the column
//
// Any column that is not one of the reserved names is taken to be a
// language code. Nothing validates it; it reaches xml:lang verbatim.
package tabular

import (
	"strings"

	"github.com/mtuoc/MTUOC-TBX/internal/term"
)

const (
	ColumnSubjectField           = "subjectField"
	ColumnExternalCrossReference = "externalCrossReference"
	DefinitionPrefix             = "definition_"
)

// Role is what a column holds.
type Role int

const (
	RoleTerms Role = iota
	RoleDefinition
	RoleSubjectField
	RoleExternalCrossReference
)

func (r Role) String() string {
	switch r {
	case RoleDefinition:
		return "definition"
	case RoleSubjectField:
		return "subjectField"
	case RoleExternalCrossReference:
		return "externalCrossReference"
	default:
		return "terms"
	}
}

// Classify returns the role of column and, for language-bearing roles,
// the language code.
func Classify(column string) (Role, string) {
	switch {
	case strings.HasPrefix(column, DefinitionPrefix):
		return RoleDefinition, strings.TrimPrefix(column, DefinitionPrefix)
	case column == ColumnExternalCrossReference:
		return RoleExternalCrossReference, ""
	case column == ColumnSubjectField:
		return RoleSubjectField, ""
	default:
		return RoleTerms, column
	}
}

// ToEntry converts one row into an Entry. Blank cells contribute nothing;
// other cells are split on term.Separator.
func ToEntry(rec term.Record) term.Entry {
	var e term.Entry
	for _, f := range rec {
		if strings.TrimSpace(f.Value) == "" {
			continue
		}
		role, lang := Classify(f.Column)
		for _, v := range term.SplitValues(f.Value) {
			switch role {
			case RoleDefinition:
				e.AddDefinition(lang, v)
			case RoleExternalCrossReference:
				e.AddExternalCrossReference(v)
			case RoleSubjectField:
				e.AddSubjectField(v)
			default:
				e.AddTerm(lang, v)
			}
		}
	}
	return e
}

// ToEntries converts every row of t.
func ToEntries(t *Table) []term.Entry {
	entries := make([]term.Entry, 0, len(t.Rows))
	for _, row := range t.Rows {
		entries = append(entries, ToEntry(row))
	}
	return entries
}

// FromEntry flattens e into a row. Columns come out in the order the TBX
// builder writes the matching elements: definitions, cross-references,
// subject fields, then one column per term language.
func FromEntry(e term.Entry) term.Record {
	var f term.Fields
	for _, lang := range e.Definitions.Languages() {
		for _, v := range e.Definitions.Values(lang) {
			f.Add(DefinitionPrefix+lang, v)
		}
	}
	for _, v := range e.ExternalCrossReferences {
		f.Add(ColumnExternalCrossReference, v)
	}
	for _, v := range e.SubjectFields {
		f.Add(ColumnSubjectField, v)
	}
	for _, lang := range e.Terms.Languages() {
		for _, v := range e.Terms.Values(lang) {
			f.Add(lang, v)
		}
	}
	return f.Record()
}

// FromEntries flattens entries into a rectangular table.
func FromEntries(entries []term.Entry) *Table {
	records := make([]term.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, FromEntry(e))
	}
	return NewTable(records)
}
