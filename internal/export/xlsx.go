package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// maxSheetNameLen is the spreadsheet format's tab-name limit.
const maxSheetNameLen = 31

// Sheet is one worksheet of an exported workbook. When Columns is empty the
// key set of the first row is used, in sorted order.
type Sheet struct {
	Name    string
	Rows    []map[string]string
	Columns []string
}

// Workbook renders sheets into an XLSX binary. The first row of each sheet is
// the header; sheet names are truncated to the format's limit.
func Workbook(sheets []Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		name := truncateSheetName(sheet.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return nil, fmt.Errorf("rename sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", name, err)
		}

		columns := sheet.Columns
		if len(columns) == 0 && len(sheet.Rows) > 0 {
			columns = sortedKeys(sheet.Rows[0])
		}

		header := make([]interface{}, len(columns))
		for c, col := range columns {
			header[c] = col
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return nil, fmt.Errorf("write header for sheet %q: %w", name, err)
		}
		for r, row := range sheet.Rows {
			cells := make([]interface{}, len(columns))
			for c, col := range columns {
				cells[c] = row[col]
			}
			cellRef, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, fmt.Errorf("cell name for row %d: %w", r+2, err)
			}
			if err := f.SetSheetRow(name, cellRef, &cells); err != nil {
				return nil, fmt.Errorf("write row %d of sheet %q: %w", r+2, name, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func truncateSheetName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxSheetNameLen {
		return name
	}
	return string(runes[:maxSheetNameLen])
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
