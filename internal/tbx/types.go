// Package tbx writes and reads the TBX subset used for terminology exchange:
//
//	<tbx>
//	  <body>
//	    <termEntry>
//	      <descrip type="definition" xml:lang="LANG">TEXT</descrip>*
//	      <descrip type="externalCrossReference">TEXT</descrip>*
//	      <descrip type="subjectField">TEXT</descrip>*
//	      <langSet xml:lang="LANG">
//	        <tig><term>TEXT</term></tig>*
//	      </langSet>*
//	    </termEntry>*
//	  </body>
//	</tbx>
package tbx

import "encoding/xml"

const (
	DescripDefinition             = "definition"
	DescripExternalCrossReference = "externalCrossReference"
	DescripSubjectField           = "subjectField"
)

// xmlNamespace is the namespace bound to the reserved xml: prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

type document struct {
	XMLName xml.Name `xml:"tbx"`
	Body    body     `xml:"body"`
}

type body struct {
	Entries []termEntry `xml:"termEntry"`
}

type termEntry struct {
	Descrips []descrip `xml:"descrip"`
	LangSets []langSet `xml:"langSet"`
}

type descrip struct {
	Type string `xml:"type,attr"`
	Lang string `xml:"xml:lang,attr,omitempty"`
	Text string `xml:",chardata"`
}

type langSet struct {
	Lang string `xml:"xml:lang,attr"`
	Tigs []tig  `xml:"tig"`
}

type tig struct {
	Term string `xml:"term"`
}

// node is a generic element used when reading, where the tree may carry
// more than the subset above.
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []node     `xml:",any"`
}

func (n node) attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == local && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

// lang returns the xml:lang attribute.
func (n node) lang() string {
	for _, a := range n.Attrs {
		if a.Name.Local == "lang" && (a.Name.Space == xmlNamespace || a.Name.Space == "xml") {
			return a.Value
		}
	}
	return ""
}
