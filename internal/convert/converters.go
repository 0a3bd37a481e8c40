package convert

import "github.com/mtuoc/MTUOC-TBX/pkg/file"

// Converter names one conversion the service offers.
type Converter struct {
	Name      string
	Short     string
	InputExt  string
	OutputExt string
	Run       func(s *Service, input, output string) (Result, error)
}

// DefaultOutput derives the output path from input when none is given.
func (c Converter) DefaultOutput(input string) string {
	return file.ReplaceExt(input, c.OutputExt)
}

var Converters = []Converter{
	{
		Name:      "excel2tbx",
		Short:     "Convert a spreadsheet workbook to TBX",
		InputExt:  ".xlsx",
		OutputExt: ".tbx",
		Run:       (*Service).ExcelToTBX,
	},
	{
		Name:      "tsv2tbx",
		Short:     "Convert a tab-separated file to TBX",
		InputExt:  ".tsv",
		OutputExt: ".tbx",
		Run:       (*Service).TSVToTBX,
	},
	{
		Name:      "tbx2excel",
		Short:     "Convert a TBX file to a spreadsheet workbook",
		InputExt:  ".tbx",
		OutputExt: ".xlsx",
		Run:       (*Service).TBXToExcel,
	},
	{
		Name:      "tbx2tsv",
		Short:     "Convert a TBX file to a tab-separated file",
		InputExt:  ".tbx",
		OutputExt: ".tsv",
		Run:       (*Service).TBXToTSV,
	},
	{
		Name:      "termcat2tbx",
		Short:     "Convert a TERMCAT XML export to TBX",
		InputExt:  ".xml",
		OutputExt: ".tbx",
		Run:       (*Service).TermcatToTBX,
	},
}
