// Package layout turns one day matrix into a merged-cell table grid.
package layout

import (
	"errors"

	"github.com/abdo1819/schudle-managment/pkg/schedule/models"
)

// ErrIncompleteMatrix indicates the matrix is missing dense entries.
// Matrices built by the pivot package are always dense, so hitting this
// means a caller constructed one by hand.
var ErrIncompleteMatrix = errors.New("day matrix is missing entries")

// Grid dimensions: one header row plus four category rows for each of
// the five working days, across two label columns and four slot columns.
const (
	GridRows = 1 + len(models.WorkingDays)*models.CategoryCount
	GridCols = 2 + models.SlotCount

	dayCol      = 0
	categoryCol = 1
	slotColBase = 2
)

// Cell shading fills.
const (
	dayFill      = "8DB3E2"
	categoryFill = "B7DDE8"
	headerFill   = "8DB3E2"
)

// Layout renders one matrix into a 21x6 grid. The grid shape and merge
// spans are the same regardless of matrix sparsity: empty intersections
// become empty cells, never omitted rows or columns. Each day name is
// a single cell spanning its four category rows; the category labels
// repeat for every day. All cells are flagged right-to-left.
func Layout(m models.DayMatrix) (models.TableDescription, error) {
	if err := checkDense(m); err != nil {
		return models.TableDescription{}, err
	}

	grid := make([][]models.TableCell, 0, GridRows)

	header := make([]models.TableCell, GridCols)
	header[dayCol] = models.TableCell{RTL: true, Shading: headerFill}
	header[categoryCol] = models.TableCell{RTL: true, Shading: headerFill}
	for s := 0; s < models.SlotCount; s++ {
		header[slotColBase+s] = models.TableCell{
			Text:    models.SlotLabels[s],
			RTL:     true,
			Shading: headerFill,
		}
	}
	grid = append(grid, header)

	for _, day := range models.WorkingDays {
		for ci, cat := range models.Categories {
			row := make([]models.TableCell, GridCols)
			if ci == 0 {
				row[dayCol] = models.TableCell{
					Text:    string(day),
					RowSpan: models.CategoryCount,
					RTL:     true,
					Shading: dayFill,
				}
			} else {
				row[dayCol] = models.TableCell{Merged: true, Shading: dayFill}
			}
			row[categoryCol] = models.TableCell{
				Text:    cat.Label(),
				RTL:     true,
				Shading: categoryFill,
			}
			for s := 1; s <= models.SlotCount; s++ {
				row[slotColBase+s-1] = models.TableCell{
					Text: m.Get(day, s, cat),
					RTL:  true,
				}
			}
			grid = append(grid, row)
		}
	}

	return models.TableDescription{Rows: grid}, nil
}

// checkDense verifies the 7x4x4 density precondition.
func checkDense(m models.DayMatrix) error {
	for _, d := range models.Days {
		slots, ok := m[d]
		if !ok {
			return ErrIncompleteMatrix
		}
		for s := 1; s <= models.SlotCount; s++ {
			cats, ok := slots[s]
			if !ok {
				return ErrIncompleteMatrix
			}
			for _, c := range models.Categories {
				if _, ok := cats[c]; !ok {
					return ErrIncompleteMatrix
				}
			}
		}
	}
	return nil
}
