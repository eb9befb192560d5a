package dataset

import (
	"fmt"

	"github.com/raykavin/linechart/pkg/core"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads series from a worksheet laid out like a CSV table.
// An empty sheet name selects the first sheet of the workbook.
func ReadXLSX(path, sheet string, opts CSVOptions) ([]core.Series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyTable
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return parseTable(rows, opts)
}
