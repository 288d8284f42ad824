package models

// TableCell is one grid cell of a rendered table.
type TableCell struct {
	// Text is the displayed string, possibly empty.
	Text string
	// RowSpan is the number of grid rows this cell spans vertically.
	// Zero or one means no merge; the covered cells below carry Merged.
	RowSpan int
	// Merged marks a cell covered by a vertical span starting above it.
	Merged bool
	// RTL requests right-to-left paragraph alignment for the cell text.
	RTL bool
	// Shading is a hex RGB fill color, empty for no shading.
	Shading string
}

// TableDescription is a renderer-agnostic grid with merge bookkeeping.
type TableDescription struct {
	// Rows holds the grid cells, row-major. Every row has the same width.
	Rows [][]TableCell
}

// RowCount returns the number of grid rows.
func (t TableDescription) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the grid width, zero for an empty table.
func (t TableDescription) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}
