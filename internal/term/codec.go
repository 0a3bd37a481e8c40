package term

import "strings"

// Separator joins multiple values inside one cell. A value that itself
// contains Separator does not survive a join/split round trip.
const Separator = "; "

// JoinValues joins values with Separator.
func JoinValues(values []string) string {
	return strings.Join(values, Separator)
}

// SplitValues splits a cell on Separator and drops blank pieces.
// Pieces are kept verbatim otherwise.
func SplitValues(cell string) []string {
	if isBlank(cell) {
		return nil
	}
	parts := strings.Split(cell, Separator)
	out := parts[:0]
	for _, p := range parts {
		if !isBlank(p) {
			out = append(out, p)
		}
	}
	return out
}

// Fields accumulates values per key in first-seen order and flattens them
// into a Record.
type Fields struct {
	values LangValues
}

// Add appends value under key; blank values are ignored.
func (f *Fields) Add(key, value string) {
	f.values.Add(key, value)
}

// Record joins each key's values with Separator.
func (f Fields) Record() Record {
	rec := make(Record, 0, f.values.Len())
	for _, key := range f.values.langs {
		rec = append(rec, Field{Column: key, Value: JoinValues(f.values.values[key])})
	}
	return rec
}
