package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
)

// ReadCSV parses a header-mapped CSV file into validated rows.
func ReadCSV(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		records = append(records, record)
	}

	return rowsFromRecords(path, header, records, 2)
}
