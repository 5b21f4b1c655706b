package source

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Rows returns the cell text of the first non-empty sheet of a workbook.
// Column A holds the primary line, column B the secondary one.
func Rows(doc *Document) ([][]string, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: no document", ErrSourceUnavailable)
	}
	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedSpreadsheet, doc.Name, err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: sheet %s: %v", ErrUnsupportedSpreadsheet, doc.Name, sheet, err)
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}
	return nil, nil
}
