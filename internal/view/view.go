// Package view tracks where the user is in the loaded dataset. Record mode
// and table mode present the same rows, so there is exactly one current
// record index, owned by the Coordinator; zoom and scroll are satellite
// state kept separately per mode and survive mode switches.
package view

// Mode identifies one of the two presentations of the dataset.
type Mode int

const (
	// ModeRecord shows a single row vertically, one field per line.
	ModeRecord Mode = iota
	// ModeTable shows all rows in a spreadsheet-style grid.
	ModeTable
)

func (m Mode) String() string {
	if m == ModeTable {
		return "table"
	}
	return "record"
}

// Zoom limits match the original 40%-300% range, stepped 15% at a time.
const (
	MinZoom  = 0.4
	MaxZoom  = 3.0
	ZoomStep = 0.15
)

// Position is the per-mode satellite state: a zoom factor and an opaque
// scroll anchor. Neither is shared between modes.
type Position struct {
	Zoom    float64
	ScrollX int
	ScrollY int
}

// Coordinator mediates between the two view modes. Current() is the single
// source of truth for the current record; both modes read it and either may
// move it.
type Coordinator struct {
	mode     Mode
	current  int
	rowCount int
	record   Position
	table    Position
}

// NewCoordinator returns a coordinator for an empty dataset, in record mode
// with both zooms at 100%.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		current: -1,
		record:  Position{Zoom: 1.0},
		table:   Position{Zoom: 1.0},
	}
}

// Reset puts the coordinator back to its post-load defaults for a dataset
// of rowCount rows: first record current (or none when empty), zoom and
// scroll back to defaults, mode unchanged.
func (c *Coordinator) Reset(rowCount int) {
	c.rowCount = rowCount
	c.current = -1
	if rowCount > 0 {
		c.current = 0
	}
	c.record = Position{Zoom: 1.0}
	c.table = Position{Zoom: 1.0}
}

// Clamp adjusts the coordinator for a replacement dataset of rowCount rows,
// keeping zoom and scroll but pulling the current index back into range.
// Used after a header promotion, which changes the row count by one.
func (c *Coordinator) Clamp(rowCount int) {
	c.rowCount = rowCount
	if rowCount == 0 {
		c.current = -1
		return
	}
	if c.current < 0 {
		c.current = 0
	}
	if c.current > rowCount-1 {
		c.current = rowCount - 1
	}
}

// Mode reports the active view mode.
func (c *Coordinator) Mode() Mode {
	return c.mode
}

// Current reports the shared current record index, -1 when the dataset has
// no rows.
func (c *Coordinator) Current() int {
	return c.current
}

// RowCount reports the row count the coordinator was last told about.
func (c *Coordinator) RowCount() int {
	return c.rowCount
}

// SwitchMode enters the given mode. The current index carries over because
// it is shared; the entered mode's own zoom and scroll are untouched, so a
// prior scroll offset is restored rather than reset.
func (c *Coordinator) SwitchMode(to Mode) {
	c.mode = to
}

// Toggle flips between the two modes.
func (c *Coordinator) Toggle() {
	if c.mode == ModeRecord {
		c.mode = ModeTable
	} else {
		c.mode = ModeRecord
	}
}

// Navigate moves the current record by delta, clamped to the row range.
// It only applies in record mode; table mode moves its own cursor through
// scroll state and commits via SelectFromTable.
func (c *Coordinator) Navigate(delta int) {
	if c.mode != ModeRecord || c.current < 0 {
		return
	}
	next := c.current + delta
	if next < 0 {
		next = 0
	}
	if next > c.rowCount-1 {
		next = c.rowCount - 1
	}
	c.current = next
}

// SelectFromTable commits a row activated in table mode as the current
// record and switches to record mode.
func (c *Coordinator) SelectFromTable(row int) {
	if c.rowCount == 0 {
		return
	}
	if row < 0 {
		row = 0
	}
	if row > c.rowCount-1 {
		row = c.rowCount - 1
	}
	c.current = row
	c.mode = ModeRecord
}

// AdjustZoom steps the named mode's zoom factor by steps increments of
// ZoomStep, clamped to [MinZoom, MaxZoom]. The other mode's zoom never
// moves. It returns the resulting factor.
func (c *Coordinator) AdjustZoom(mode Mode, steps int) float64 {
	p := c.position(mode)
	z := p.Zoom + float64(steps)*ZoomStep
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	p.Zoom = z
	return z
}

// Zoom reports the zoom factor for the given mode.
func (c *Coordinator) Zoom(mode Mode) float64 {
	return c.position(mode).Zoom
}

// Scroll reports the scroll anchor for the given mode.
func (c *Coordinator) Scroll(mode Mode) (x, y int) {
	p := c.position(mode)
	return p.ScrollX, p.ScrollY
}

// SetScroll records the scroll anchor for the given mode.
func (c *Coordinator) SetScroll(mode Mode, x, y int) {
	p := c.position(mode)
	p.ScrollX = x
	p.ScrollY = y
}

func (c *Coordinator) position(mode Mode) *Position {
	if mode == ModeTable {
		return &c.table
	}
	return &c.record
}
