package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Table is a raw tabular file: a header row plus data rows as strings.
// Typed decoding happens downstream in the dataset package.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Options controls how a table file is read.
type Options struct {
	// Delimiter for CSV. If 0, auto-detects from the file extension.
	Delimiter rune
	// SheetName selects a spreadsheet sheet by name. Empty = use SheetIndex.
	SheetName string
	// SheetIndex selects a spreadsheet sheet (1-based). <= 0 means first sheet.
	SheetIndex int
}

// Source defines a table file reader implementation.
type Source interface {
	CanRead(filename string) bool
	Read(path string, opt Options) (*Table, error)
}

var registry []Source

// Register adds a source implementation to the registry.
func Register(s Source) {
	registry = append(registry, s)
}

// ReadTable selects a source based on filename and returns the parsed table.
func ReadTable(path string, opt Options) (*Table, error) {
	for _, s := range registry {
		if s.CanRead(path) {
			return s.Read(path, opt)
		}
	}
	return nil, fmt.Errorf("unsupported table format: %s (use .csv, .tsv, .xlsx or .xls)", filepath.Base(path))
}

func init() {
	Register(csvSource{})
	Register(xlsxSource{})
	Register(xlsSource{})
}

// tableFromRows builds a Table from raw rows, treating the first row as the
// header and padding short data rows to the header width.
func tableFromRows(name string, rows [][]string) *Table {
	t := &Table{Name: name}
	if len(rows) == 0 {
		return t
	}
	t.Header = make([]string, len(rows[0]))
	for i, h := range rows[0] {
		t.Header[i] = strings.TrimSpace(h)
	}
	ncol := len(t.Header)
	for _, r := range rows[1:] {
		if len(r) < ncol {
			tmp := make([]string, ncol)
			copy(tmp, r)
			r = tmp
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}
