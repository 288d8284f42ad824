// Package reader parses CSV and Excel schedule files into validated rows.
package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
)

// Read dispatches on the file extension: .csv goes to ReadCSV, .xlsx
// and .xlsm to ReadExcel.
func Read(path string) ([]models.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(path)
	case ".xlsx", ".xlsm":
		return ReadExcel(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// rowsFromRecords validates header-mapped records. The first invalid
// record aborts the whole read; there is no partial-success mode.
// firstDataLine is the 1-based line number of the first data record,
// used in error messages.
func rowsFromRecords(path string, header []string, records [][]string, firstDataLine int) ([]models.Row, error) {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []models.Row
	for i, record := range records {
		raw := make(map[string]string, len(cols))
		for j, col := range cols {
			if j < len(record) {
				raw[col] = record[j]
			}
		}
		row, err := models.Validate(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, firstDataLine+i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
