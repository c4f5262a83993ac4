package dataset

// Promotion is a preview of a header promotion: what the header row is now
// and what it would become. It carries no references into the Dataset, so
// the confirmation UI can hold it across frames.
type Promotion struct {
	Pivot     int
	OldHeader []string
	NewHeader []string
}

// PreviewPromotion describes the effect of promoting the data row at pivot
// to be the new header, without changing anything. It fails with
// ErrIndexOutOfRange for a pivot outside the data rows and with ErrSingleRow
// when there are fewer than two data rows, since promoting the only row
// would leave no data.
func (d *Dataset) PreviewPromotion(pivot int) (Promotion, error) {
	if pivot < 0 || pivot >= len(d.rows) {
		return Promotion{}, ErrIndexOutOfRange
	}
	if len(d.rows) <= 1 {
		return Promotion{}, ErrSingleRow
	}
	return Promotion{
		Pivot:     pivot,
		OldHeader: padded(d.headers, len(d.headers)),
		NewHeader: padded(d.rows[pivot], len(d.headers)),
	}, nil
}

// Promote builds a new Dataset with the row at pivot as its header. The old
// header becomes the first data row, rows before the pivot keep their order
// after it, the pivot row leaves the data sequence, and rows after the pivot
// follow unchanged. Width mismatches are resolved by padding with empty
// strings, never by dropping cells. The receiver is left untouched; the
// caller replaces its reference and clamps its current index into the new
// row range.
func (d *Dataset) Promote(pivot int) (*Dataset, error) {
	if pivot < 0 || pivot >= len(d.rows) {
		return nil, ErrIndexOutOfRange
	}
	if len(d.rows) <= 1 {
		return nil, ErrSingleRow
	}

	rows := make([][]string, 0, len(d.rows))
	rows = append(rows, d.headers)
	rows = append(rows, d.rows[:pivot]...)
	rows = append(rows, d.rows[pivot+1:]...)

	return Load(d.rows[pivot], rows)
}
