package tbx

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/mtuoc/MTUOC-TBX/internal/term"
	"github.com/mtuoc/MTUOC-TBX/pkg/log"
)

// Write serializes entries as a pretty-printed UTF-8 TBX document with an
// XML declaration. One termEntry is written per entry, in order.
func Write(w io.Writer, entries []term.Entry) error {
	doc := document{}
	doc.Body.Entries = make([]termEntry, 0, len(entries))
	for _, e := range entries {
		doc.Body.Entries = append(doc.Body.Entries, buildEntry(e))
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(xml.Header); err != nil {
		return fmt.Errorf("write tbx: %w", err)
	}

	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode tbx: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode tbx: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("write tbx: %w", err)
	}
	return bw.Flush()
}

// buildEntry lays out one concept: definitions, cross-references, subject
// fields, then one langSet per term language.
func buildEntry(e term.Entry) termEntry {
	var te termEntry
	for _, lang := range e.Definitions.Languages() {
		for _, v := range e.Definitions.Values(lang) {
			te.Descrips = append(te.Descrips, descrip{Type: DescripDefinition, Lang: xmlText(lang), Text: xmlText(v)})
		}
	}
	for _, v := range e.ExternalCrossReferences {
		te.Descrips = append(te.Descrips, descrip{Type: DescripExternalCrossReference, Text: xmlText(v)})
	}
	for _, v := range e.SubjectFields {
		te.Descrips = append(te.Descrips, descrip{Type: DescripSubjectField, Text: xmlText(v)})
	}
	for _, lang := range e.Terms.Languages() {
		ls := langSet{Lang: xmlText(lang)}
		for _, v := range e.Terms.Values(lang) {
			ls.Tigs = append(ls.Tigs, tig{Term: xmlText(v)})
		}
		te.LangSets = append(te.LangSets, ls)
	}
	return te
}

// xmlText drops characters XML 1.0 cannot carry, such as control
// characters pasted into spreadsheet cells, and warns when it does.
func xmlText(s string) string {
	dropped := 0
	out := strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		dropped++
		return -1
	}, s)
	if dropped > 0 {
		log.Warn("Dropped %d character(s) not allowed in XML from %q", dropped, s)
	}
	return out
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	default:
		return r >= 0x10000 && r <= 0x10FFFF
	}
}
