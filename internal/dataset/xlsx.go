package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

type xlsxLoader struct{}

func (xlsxLoader) CanLoad(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".xlsx")
}

// Load reads the selected sheet (the first one when opt.Sheet is empty).
// The date column must hold ISO text, not spreadsheet date cells.
func (xlsxLoader) Load(r io.Reader, opt Options) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("open xlsx: workbook has no sheets")
		}
		sheet = sheets[0]
	} else if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return nil, fmt.Errorf("sheet '%s' not found. Available sheets: %s",
			sheet, strings.Join(f.GetSheetList(), ", "))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	ds := newDataset("")
	for i, row := range rows {
		if i == 0 || isBlank(row) {
			continue
		}
		rec, err := parseRow(row, i+1)
		if err != nil {
			return nil, err
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}
