package tbx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/mtuoc/MTUOC-TBX/internal/term"
)

// Read flattens every termEntry of a TBX document into a record, at any
// depth below the root.
//
// Each descrip child is keyed by its type, or by type_lang when it carries
// xml:lang, so definitions come out as definition_en, definition_fr and so
// on. A definition without xml:lang keeps the bare key "definition". Each
// langSet with xml:lang contributes the text of every term below it under
// the language code. Text is trimmed, blanks are skipped and repeated keys
// are joined with term.Separator.
func Read(r io.Reader) ([]term.Record, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	records := []term.Record{}
	sawRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse tbx: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true
		if start.Name.Local != "termEntry" {
			continue
		}

		var entry node
		if err := dec.DecodeElement(&entry, &start); err != nil {
			return nil, fmt.Errorf("parse tbx termEntry %d: %w", len(records)+1, err)
		}
		records = append(records, flatten(entry))
	}

	if !sawRoot {
		return nil, fmt.Errorf("parse tbx: no root element")
	}
	return records, nil
}

func flatten(entry node) term.Record {
	var fields term.Fields
	for _, child := range entry.Nodes {
		if child.XMLName.Local != "descrip" {
			continue
		}
		dtype, ok := child.attr("type")
		if !ok || dtype == "" {
			continue
		}
		key := dtype
		if lang := child.lang(); lang != "" {
			key = dtype + "_" + lang
		}
		fields.Add(key, strings.TrimSpace(child.Text))
	}

	for _, child := range entry.Nodes {
		if child.XMLName.Local != "langSet" {
			continue
		}
		lang := child.lang()
		if lang == "" {
			continue
		}
		for _, t := range terms(child) {
			fields.Add(lang, t)
		}
	}
	return fields.Record()
}

// terms collects the trimmed text of every term element below n.
func terms(n node) []string {
	var out []string
	for _, child := range n.Nodes {
		if child.XMLName.Local == "term" {
			if v := strings.TrimSpace(child.Text); v != "" {
				out = append(out, v)
			}
		}
		out = append(out, terms(child)...)
	}
	return out
}
