package reader

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
)

// ScheduleSheet is the worksheet the schedule data must live in.
const ScheduleSheet = "table_full"

// ErrUnsupportedSheet indicates the workbook has no schedule worksheet.
var ErrUnsupportedSheet = errors.New(`workbook has no "table_full" sheet`)

// ReadExcel parses the table_full sheet of an xlsx workbook into
// validated rows.
func ReadExcel(path string) ([]models.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(ScheduleSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedSheet)
	}

	rows, err := f.GetRows(ScheduleSheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rowsFromRecords(path, rows[0], rows[1:], 2)
}
