// Package termcat reads TERMCAT terminology exports, where each concept is
// a fitxa element, and maps them straight into term entries.
package termcat

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/mtuoc/MTUOC-TBX/internal/term"
)

// CodeLanguage is the llengua value marking a denominacio as an external
// identifier (IATE and similar) rather than a term.
const CodeLanguage = "cod"

// XMLFitxa is one fitxa record. Children are kept generic so that their
// namespace can be checked against the document's default namespace.
type XMLFitxa struct {
	Children []XMLField `xml:",any"`
}

// XMLField is a direct child of a fitxa.
type XMLField struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
}

func (f XMLField) llengua() string {
	for _, a := range f.Attrs {
		if a.Name.Local == "llengua" && a.Name.Space == "" {
			return a.Value
		}
	}
	return ""
}

// Read returns one entry per fitxa element found anywhere under the root.
// When the root declares a default namespace, only fitxa elements and
// children in that namespace are used.
func Read(r io.Reader) ([]term.Entry, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	entries := []term.Entry{}
	var ns string
	sawRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse termcat xml: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if !sawRoot {
			sawRoot = true
			ns = defaultNamespace(start)
		}
		if start.Name.Local != "fitxa" || start.Name.Space != ns {
			continue
		}

		var fitxa XMLFitxa
		if err := dec.DecodeElement(&fitxa, &start); err != nil {
			return nil, fmt.Errorf("parse termcat fitxa %d: %w", len(entries)+1, err)
		}
		entries = append(entries, convertFitxa(fitxa, ns))
	}

	if !sawRoot {
		return nil, fmt.Errorf("parse termcat xml: no root element")
	}
	return entries, nil
}

func defaultNamespace(root xml.StartElement) string {
	for _, a := range root.Attr {
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			return a.Value
		}
	}
	return ""
}

// convertFitxa maps denominacio, definicio and areatematica children.
func convertFitxa(fitxa XMLFitxa, ns string) term.Entry {
	var e term.Entry
	for _, child := range fitxa.Children {
		if child.XMLName.Space != ns {
			continue
		}
		text := strings.TrimSpace(child.Text)
		if text == "" {
			continue
		}
		lang := child.llengua()

		switch child.XMLName.Local {
		case "denominacio":
			switch lang {
			case CodeLanguage:
				e.AddExternalCrossReference(text)
			case "":
				// a term with no language has no langSet to go in
			default:
				e.AddTerm(lang, text)
			}
		case "definicio":
			if lang != "" {
				e.AddDefinition(lang, text)
			}
		case "areatematica":
			e.AddSubjectField(text)
		}
	}
	return e
}
