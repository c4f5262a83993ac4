// Package dataset holds the canonical in-memory table for the currently
// loaded file: one header row plus the data rows, every row padded to the
// same width. A Dataset is built once per load and never mutated; header
// promotion produces a fresh Dataset.
package dataset

import "errors"

var (
	// ErrEmptySource is returned by Load when the source has neither a
	// header nor any data rows.
	ErrEmptySource = errors.New("no usable rows or header in source")

	// ErrIndexOutOfRange is returned for row or column indices outside
	// the dataset. The UI is expected to prevent this by construction.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSingleRow is returned when a header promotion is attempted with
	// fewer than two data rows, which would leave no data behind.
	ErrSingleRow = errors.New("cannot promote header with a single data row")
)

// Dataset is an immutable snapshot of a loaded table.
type Dataset struct {
	headers []string
	rows    [][]string
}

// Load builds a Dataset from a raw header row and data rows. Rows shorter
// than the widest row (header included) are right-padded with empty strings;
// rows are never truncated, so a long row grows the column count instead.
// A header-only source is valid and yields a Dataset with zero rows.
func Load(header []string, rows [][]string) (*Dataset, error) {
	if len(header) == 0 && len(rows) == 0 {
		return nil, ErrEmptySource
	}

	width := len(header)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, ErrEmptySource
	}

	d := &Dataset{
		headers: padded(header, width),
		rows:    make([][]string, len(rows)),
	}
	for i, row := range rows {
		d.rows[i] = padded(row, width)
	}
	return d, nil
}

// RowCount reports the number of data rows (the header is not a row).
func (d *Dataset) RowCount() int {
	return len(d.rows)
}

// ColumnCount reports the logical column count shared by header and rows.
func (d *Dataset) ColumnCount() int {
	return len(d.headers)
}

// Headers returns the header row. The returned slice must not be modified.
func (d *Dataset) Headers() []string {
	return d.headers
}

// Row returns the data row at index i. The returned slice must not be
// modified.
func (d *Dataset) Row(i int) ([]string, error) {
	if i < 0 || i >= len(d.rows) {
		return nil, ErrIndexOutOfRange
	}
	return d.rows[i], nil
}

// Rows returns all data rows in source order. The returned slices must not
// be modified.
func (d *Dataset) Rows() [][]string {
	return d.rows
}

// CellAt returns the cell text at the given coordinate.
func (d *Dataset) CellAt(row, col int) (string, error) {
	if row < 0 || row >= len(d.rows) || col < 0 || col >= len(d.headers) {
		return "", ErrIndexOutOfRange
	}
	return d.rows[row][col], nil
}

// padded copies cells into a slice of exactly width entries, filling the
// tail with empty strings.
func padded(cells []string, width int) []string {
	out := make([]string, width)
	copy(out, cells)
	return out
}
