package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/anrid/xls"
)

type xlsSource struct{}

func (xlsSource) CanRead(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xls")
}

func (xlsSource) Read(path string, opt Options) (*Table, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	idx := opt.SheetIndex
	if idx <= 0 {
		idx = 1
	}
	sheet := wb.GetSheet(idx - 1)
	if sheet == nil {
		return nil, fmt.Errorf("sheet index %d out of range in %s", idx, filepath.Base(path))
	}

	var rows [][]string
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		rows = append(rows, cols)
	}
	return tableFromRows(filepath.Base(path), rows), nil
}
