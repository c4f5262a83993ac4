package ui

import (
	"github.com/nconklindev/tabv/internal/dataset"
	"github.com/nconklindev/tabv/internal/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

const (
	minColWidth     = 8
	baseColWidthCap = 20
)

// columnWidths sizes each column to its widest cell, floored at minColWidth
// and capped at a zoom-scaled limit so one long cell cannot eat the screen.
func (m Model) columnWidths() []int {
	headers := m.data.Headers()
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range m.data.Rows() {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	limit := int(float64(baseColWidthCap) * m.coord.Zoom(view.ModeTable))
	if limit < minColWidth {
		limit = minColWidth
	}
	for i := range widths {
		if widths[i] < minColWidth {
			widths[i] = minColWidth
		}
		if widths[i] > limit {
			widths[i] = limit
		}
	}
	return widths
}

// visibleColumns reports the half-open column window [start, end) that fits
// the terminal width starting from startCol, always at least one column.
func (m Model) visibleColumns(startCol int, widths []int) (int, int) {
	if len(widths) == 0 {
		return 0, 0
	}
	if startCol > len(widths)-1 {
		startCol = len(widths) - 1
	}
	if startCol < 0 {
		startCol = 0
	}

	available := m.width - 6 // table borders plus slack
	if available < minColWidth {
		available = minColWidth
	}

	used := 0
	end := startCol
	for i := startCol; i < len(widths); i++ {
		need := widths[i] + 3 // content, padding, separator
		if used+need > available && end > startCol {
			break
		}
		used += need
		end = i + 1
	}
	return startCol, end
}

// tableBodyRows is how many data rows fit in a body of the given height
// once the table chrome (border, header, border) is taken out.
func tableBodyRows(height int) int {
	rows := height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m Model) viewTable(height int) string {
	if m.data == nil || m.data.RowCount() == 0 {
		return SubtitleStyle.Render("No records")
	}

	widths := m.columnWidths()
	scrollX, scrollY := m.coord.Scroll(view.ModeTable)
	startCol, endCol := m.visibleColumns(scrollX, widths)

	visRows := tableBodyRows(height)
	startRow := scrollY
	if startRow > m.data.RowCount()-1 {
		startRow = m.data.RowCount() - 1
	}
	if startRow < 0 {
		startRow = 0
	}
	endRow := startRow + visRows
	if endRow > m.data.RowCount() {
		endRow = m.data.RowCount()
	}

	clip := func(cell string, col int) string {
		return runewidth.Truncate(cell, widths[col], "…")
	}

	headers := make([]string, 0, endCol-startCol)
	for c := startCol; c < endCol; c++ {
		headers = append(headers, clip(m.data.Headers()[c], c))
	}

	rows := make([][]string, 0, endRow-startRow)
	for r := startRow; r < endRow; r++ {
		src, _ := m.data.Row(r)
		row := make([]string, 0, endCol-startCol)
		for c := startCol; c < endCol; c++ {
			row = append(row, clip(src[c], c))
		}
		rows = append(rows, row)
	}

	matches := make(map[dataset.Match]bool, len(m.search.Matches))
	for _, match := range m.search.Matches {
		matches[match] = true
	}
	current, hasCurrent := m.search.Current()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderRowStyle
			}
			at := dataset.Match{Row: startRow + row, Col: startCol + col}
			switch {
			case hasCurrent && at == current:
				return CurrentMatchStyle
			case matches[at]:
				return MatchStyle
			case at.Row == m.tableCursor:
				return CursorRowStyle
			}
			return CellStyle
		})

	out := t.String()
	if endCol < len(widths) {
		out += "\n" + SubtitleStyle.Render("  more columns →  (←/→ to scroll)")
	}
	return out
}

// moveTableCursor moves the highlighted table row and keeps it inside the
// visible window.
func (m *Model) moveTableCursor(delta int) {
	if m.data == nil || m.data.RowCount() == 0 {
		return
	}
	m.tableCursor += delta
	if m.tableCursor < 0 {
		m.tableCursor = 0
	}
	if m.tableCursor > m.data.RowCount()-1 {
		m.tableCursor = m.data.RowCount() - 1
	}
	m.ensureRowVisible(m.tableCursor)
}

func (m *Model) scrollTableColumns(delta int) {
	if m.data == nil {
		return
	}
	x, y := m.coord.Scroll(view.ModeTable)
	x += delta
	if x > m.data.ColumnCount()-1 {
		x = m.data.ColumnCount() - 1
	}
	if x < 0 {
		x = 0
	}
	m.coord.SetScroll(view.ModeTable, x, y)
}

func (m *Model) ensureRowVisible(row int) {
	visRows := tableBodyRows(m.bodyHeight())
	x, y := m.coord.Scroll(view.ModeTable)
	if row < y {
		y = row
	} else if row >= y+visRows {
		y = row - visRows + 1
	}
	if y < 0 {
		y = 0
	}
	m.coord.SetScroll(view.ModeTable, x, y)
}

func (m *Model) ensureCellVisible(match dataset.Match) {
	m.ensureRowVisible(match.Row)

	widths := m.columnWidths()
	x, y := m.coord.Scroll(view.ModeTable)
	if match.Col < x {
		m.coord.SetScroll(view.ModeTable, match.Col, y)
		return
	}
	for x < match.Col {
		_, end := m.visibleColumns(x, widths)
		if match.Col < end {
			break
		}
		x++
	}
	m.coord.SetScroll(view.ModeTable, x, y)
}
