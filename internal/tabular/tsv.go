package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNoHeader is returned when a tabular source has no header row.
var ErrNoHeader = errors.New("missing header row")

// utf8BOM is stripped before reading; UTF-16 byte order marks switch the
// decoder instead.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTSV reads a tab-separated table with a header row. Every cell is
// text. UTF-16 input with a byte order mark is decoded transparently;
// anything else must be valid UTF-8.
func ReadTSV(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(bom, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(transform.NewReader(br, unicode.BOMOverride(transform.Nop)))
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		header    []string
		data      [][]string
		sawHeader bool
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse tsv: %w", err)
		}

		line, _ := cr.FieldPos(0)
		for i, cell := range rec {
			if !utf8.ValidString(cell) {
				return nil, fmt.Errorf("parse tsv: line %d, field %d: invalid UTF-8", line, i+1)
			}
		}

		if !sawHeader {
			header = cleanHeader(rec)
			sawHeader = true
			continue
		}
		if extra := overflow(rec, len(header)); extra != "" {
			return nil, fmt.Errorf("parse tsv: line %d: %d fields, header has %d (extra value %q)",
				line, len(rec), len(header), extra)
		}
		data = append(data, rec)
	}
	if !sawHeader {
		return nil, ErrNoHeader
	}
	return fromCells(header, data), nil
}

// overflow returns the first non-blank cell past width, if any.
func overflow(cells []string, width int) string {
	for i := width; i < len(cells); i++ {
		if v := strings.TrimSpace(cells[i]); v != "" {
			return v
		}
	}
	return ""
}

// WriteTSV writes t with a header row. A table without columns is written
// as an empty file.
func WriteTSV(w io.Writer, t *Table) error {
	if len(t.Columns) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write tsv header: %w", err)
	}
	if err := cw.WriteAll(t.Cells()); err != nil {
		return fmt.Errorf("write tsv rows: %w", err)
	}
	return nil
}
