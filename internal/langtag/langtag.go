// Package langtag inspects language codes and content without ever
// rejecting them: findings are reported, the codes are still used verbatim.
package langtag

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// Inspect reports whether code parses as a BCP 47 tag and, if so, its
// canonical form (for example "pt_br" becomes "pt-BR").
func Inspect(code string) (canonical string, ok bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil || tag == language.Und {
		return "", false
	}
	return tag.String(), true
}

// Base returns the two-letter base of code, or code itself when it does
// not parse.
func Base(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, _ := tag.Base()
	return base.String()
}

// Mismatch is a text whose detected language differs from its declared one.
type Mismatch struct {
	Declared string
	Detected string
	Text     string
}

// CheckContent detects the language of text and reports a mismatch
// against declared. Only reliable detections are reported, and declared
// codes that do not parse are skipped.
func CheckContent(declared, text string) (Mismatch, bool) {
	if _, ok := Inspect(declared); !ok {
		return Mismatch{}, false
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return Mismatch{}, false
	}
	detected := info.Lang.Iso6391()
	if detected == "" {
		return Mismatch{}, false
	}

	if Base(declared) == Base(detected) {
		return Mismatch{}, false
	}
	return Mismatch{Declared: declared, Detected: detected, Text: text}, true
}
