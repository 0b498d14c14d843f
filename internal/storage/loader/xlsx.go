package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/leengari/cleanr/internal/domain/errors"
)

// readSheet reads every row of one spreadsheet sheet.
// Rows are padded to the header width since trailing empty cells are not stored.
func readSheet(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &errors.LoadError{Path: path, Op: "open", Err: fmt.Errorf("%w: %v", errors.ErrParse, err)}
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &errors.LoadError{Path: path, Op: "read", Err: errors.ErrEmptyInput}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &errors.LoadError{Path: path, Op: "read", Err: fmt.Errorf("sheet %q: %w", sheet, err)}
	}
	if len(rows) == 0 {
		return rows, nil
	}

	width := len(rows[0])
	for i, row := range rows[1:] {
		switch {
		case len(row) > width:
			return nil, &errors.LoadError{Path: path, Op: "read",
				Err: fmt.Errorf("%w: sheet %q row %d has %d cells, header has %d", errors.ErrParse, sheet, i+2, len(row), width)}
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			rows[i+1] = padded
		}
	}
	return rows, nil
}
