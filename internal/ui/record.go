package ui

import (
	"strings"

	"github.com/nconklindev/tabv/internal/view"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// recordBaseWidth is the value wrap width at 100% zoom.
const recordBaseWidth = 60

// recordLines renders the current record as label/value lines, one field
// per header with wrapped values continuing on indented lines.
func (m Model) recordLines() []string {
	cur := m.coord.Current()
	if m.data == nil || cur < 0 {
		return nil
	}
	row, err := m.data.Row(cur)
	if err != nil {
		return []string{ErrorStyle.Render(err.Error())}
	}
	headers := m.data.Headers()

	labelWidth := 0
	for _, h := range headers {
		if w := runewidth.StringWidth(h); w > labelWidth {
			labelWidth = w
		}
	}
	if m.width > 0 && labelWidth > m.width/3 {
		labelWidth = m.width / 3
	}

	wrapWidth := int(float64(recordBaseWidth) * m.coord.Zoom(view.ModeRecord))
	if m.width > 0 && wrapWidth > m.width-labelWidth-3 {
		wrapWidth = m.width - labelWidth - 3
	}
	if wrapWidth < 10 {
		wrapWidth = 10
	}

	indent := strings.Repeat(" ", labelWidth+2)
	var lines []string
	for i, h := range headers {
		label := runewidth.FillLeft(runewidth.Truncate(h, labelWidth, "…"), labelWidth)
		value := ""
		if i < len(row) {
			value = row[i]
		}
		wrapped := strings.Split(wordwrap.String(value, wrapWidth), "\n")
		for j, part := range wrapped {
			if j == 0 {
				lines = append(lines, LabelStyle.Render(label)+"  "+ValueStyle.Render(part))
			} else {
				lines = append(lines, indent+ValueStyle.Render(part))
			}
		}
	}
	return lines
}

func (m Model) viewRecord(height int) string {
	if m.data == nil || m.coord.Current() < 0 {
		return SubtitleStyle.Render("No records")
	}

	lines := m.recordLines()
	_, scrollY := m.coord.Scroll(view.ModeRecord)
	if scrollY > len(lines)-height {
		scrollY = len(lines) - height
	}
	if scrollY < 0 {
		scrollY = 0
	}

	end := scrollY + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[scrollY:end], "\n")
}

// scrollRecord moves the record body viewport, clamped so at least one line
// stays on screen. The offset lives in the coordinator so it survives a
// round trip through table mode.
func (m *Model) scrollRecord(delta int) {
	lines := len(m.recordLines())
	if lines == 0 {
		return
	}
	x, y := m.coord.Scroll(view.ModeRecord)
	y += delta
	if y > lines-1 {
		y = lines - 1
	}
	if y < 0 {
		y = 0
	}
	m.coord.SetScroll(view.ModeRecord, x, y)
}
