// Package convert runs whole-file conversions between spreadsheets, TSV,
// TERMCAT XML and TBX. Each conversion reads its input fully, builds the
// output in memory and moves it into place only on success.
package convert

import (
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mtuoc/MTUOC-TBX/internal/config"
	"github.com/mtuoc/MTUOC-TBX/internal/langtag"
	"github.com/mtuoc/MTUOC-TBX/internal/tabular"
	"github.com/mtuoc/MTUOC-TBX/internal/tbx"
	"github.com/mtuoc/MTUOC-TBX/internal/term"
	"github.com/mtuoc/MTUOC-TBX/internal/termcat"
	"github.com/mtuoc/MTUOC-TBX/pkg/file"
	"github.com/mtuoc/MTUOC-TBX/pkg/log"
)

// Result describes a finished conversion.
type Result struct {
	Input   string
	Output  string
	Records int
}

type Service struct {
	cfg config.Config
}

func NewService(cfg config.Config) *Service {
	return &Service{cfg: cfg}
}

// ExcelToTBX converts the first sheet (or the configured input sheet) of a
// workbook into a TBX document.
func (s *Service) ExcelToTBX(input, output string) (Result, error) {
	return s.tabularToTBX(input, output, "workbook", func(r io.Reader) (*tabular.Table, error) {
		return tabular.ReadXLSX(r, s.cfg.Sheet.Input)
	})
}

// TSVToTBX converts a tab-separated file with a header row into a TBX document.
func (s *Service) TSVToTBX(input, output string) (Result, error) {
	return s.tabularToTBX(input, output, "TSV file", tabular.ReadTSV)
}

// TBXToExcel flattens a TBX document into a workbook, one row per termEntry.
func (s *Service) TBXToExcel(input, output string) (Result, error) {
	return s.tbxToTabular(input, output, "workbook", func(w io.Writer, t *tabular.Table) error {
		return tabular.WriteXLSX(w, t, s.cfg.Sheet.Output)
	})
}

// TBXToTSV flattens a TBX document into a tab-separated file.
func (s *Service) TBXToTSV(input, output string) (Result, error) {
	return s.tbxToTabular(input, output, "TSV file", tabular.WriteTSV)
}

// TermcatToTBX converts a TERMCAT fitxa export into a TBX document.
func (s *Service) TermcatToTBX(input, output string) (Result, error) {
	var entries []term.Entry
	err := s.read(input, output, func(r io.Reader) error {
		var err error
		entries, err = termcat.Read(r)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return s.writeTBX(input, output, entries)
}

func (s *Service) tabularToTBX(input, output, kind string, readTable func(io.Reader) (*tabular.Table, error)) (Result, error) {
	var table *tabular.Table
	err := s.read(input, output, func(r io.Reader) error {
		var err error
		table, err = readTable(r)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	log.Debug("Read %d rows and %d columns from %s %s", len(table.Rows), len(table.Columns), kind, input)

	return s.writeTBX(input, output, tabular.ToEntries(table))
}

func (s *Service) tbxToTabular(input, output, kind string, writeTable func(io.Writer, *tabular.Table) error) (Result, error) {
	var records []term.Record
	err := s.read(input, output, func(r io.Reader) error {
		var err error
		records, err = tbx.Read(r)
		return err
	})
	if err != nil {
		return Result{}, err
	}

	table := tabular.NewTable(records)
	if err := writeFile(output, func(w io.Writer) error {
		return writeTable(w, table)
	}); err != nil {
		return Result{}, err
	}

	log.Info("%s successfully written to: %s (%d rows, %d columns)",
		capitalize(kind), output, len(table.Rows), len(table.Columns))
	return Result{Input: input, Output: output, Records: len(table.Rows)}, nil
}

func (s *Service) writeTBX(input, output string, entries []term.Entry) (Result, error) {
	s.inspect(entries)

	if err := writeFile(output, func(w io.Writer) error {
		return tbx.Write(w, entries)
	}); err != nil {
		return Result{}, err
	}

	log.Info("TBX file successfully written to: %s (%d entries)", output, len(entries))
	return Result{Input: input, Output: output, Records: len(entries)}, nil
}

// read checks that input exists before looking at output, opens it and
// hands it to parse. Parse failures come back as ErrParse.
func (s *Service) read(input, output string, parse func(io.Reader) error) error {
	if strings.TrimSpace(input) == "" {
		return NewError(ErrValidation, "input file path cannot be empty")
	}

	f, err := openInput(input)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := validateOutput(input, output); err != nil {
		return err
	}

	log.Debug("Converting %s to %s", input, output)
	if err := parse(f); err != nil {
		return WrapError(err, ErrParse, "failed to parse input file").
			WithContext("path", input)
	}
	return nil
}

func validateOutput(input, output string) error {
	if strings.TrimSpace(output) == "" {
		return NewError(ErrValidation, "output file path cannot be empty")
	}
	if file.SamePath(input, output) {
		return NewError(ErrValidation, "output file path must differ from the input path").
			WithContext("path", input)
	}
	return nil
}

func openInput(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, WrapError(err, ErrFileNotFound, "input file does not exist").
			WithContext("path", path)
	}
	if err != nil {
		return nil, WrapError(err, ErrFileRead, "failed to stat input file").
			WithContext("path", path)
	}
	if info.IsDir() {
		return nil, NewError(ErrFileRead, "input path is a directory").
			WithContext("path", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, WrapError(err, ErrFileRead, "failed to open input file").
			WithContext("path", path)
	}
	return f, nil
}

// inspect logs entries with no content, language codes that are not BCP 47
// tags and, when enabled, definitions that read as another language. It
// never changes entries.
func (s *Service) inspect(entries []term.Entry) {
	empty := 0
	for _, e := range entries {
		if e.IsEmpty() {
			empty++
		}
	}
	if empty > 0 {
		log.Warn("%d of %d entries are empty and will be written as bare termEntry elements", empty, len(entries))
	}

	if s.cfg.Check.LanguageTags {
		bad := make(map[string]bool)
		for _, e := range entries {
			for _, lang := range append(e.Terms.Languages(), e.Definitions.Languages()...) {
				if _, ok := langtag.Inspect(lang); !ok {
					bad[lang] = true
				}
			}
		}
		codes := make([]string, 0, len(bad))
		for code := range bad {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			log.Warn("Language code %q is not a BCP 47 tag; writing it verbatim as xml:lang", code)
		}
	}

	if s.cfg.Check.ContentLanguage {
		for i, e := range entries {
			for _, lang := range e.Definitions.Languages() {
				for _, def := range e.Definitions.Values(lang) {
					if m, ok := langtag.CheckContent(lang, def); ok {
						log.Warn("Entry %d: definition declared %q reads as %q: %.60q",
							i+1, m.Declared, m.Detected, m.Text)
					}
				}
			}
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
