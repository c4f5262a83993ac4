package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nconklindev/tabv/internal/view"

	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	switch m.state {
	case statePicker:
		return m.viewPicker()
	case stateBrowse:
		return m.viewBrowse()
	}
	return ""
}

func (m Model) viewPicker() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("tabv — CSV/XLSX viewer"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select a CSV or XLSX file to view"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n")
	if m.status != "" {
		s.WriteString(m.status)
		s.WriteString("\n")
	}
	s.WriteString(HelpStyle.Render("enter: open • q: quit"))

	return s.String()
}

// bodyHeight is the number of lines available to the record or table body
// after the title, status, and help chrome.
func (m Model) bodyHeight() int {
	h := m.height - 4
	if m.searching {
		h--
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) viewBrowse() string {
	if m.data == nil {
		return SubtitleStyle.Render("No file loaded")
	}

	title := TitleStyle.Render("tabv") + SubtitleStyle.Render(" — "+filepath.Base(m.path))

	var body string
	switch {
	case m.pending != nil:
		body = m.viewConfirm()
	case m.coord.Mode() == view.ModeRecord:
		body = m.viewRecord(m.bodyHeight())
	default:
		body = m.viewTable(m.bodyHeight())
	}

	sections := []string{title, body}
	if m.searching {
		sections = append(sections, m.searchInput.View())
	}
	sections = append(sections, m.statusLine(), m.help.View(m.keys))

	return strings.Join(sections, "\n")
}

func (m Model) statusLine() string {
	var parts []string

	if m.coord.Mode() == view.ModeRecord {
		if m.coord.Current() >= 0 {
			parts = append(parts, fmt.Sprintf("Record %d of %d", m.coord.Current()+1, m.data.RowCount()))
		} else {
			parts = append(parts, "No records")
		}
	} else {
		parts = append(parts, fmt.Sprintf("Table — %d rows, %d columns", m.data.RowCount(), m.data.ColumnCount()))
	}

	if z := zoomPercent(m.coord.Zoom(m.coord.Mode())); z != 100 {
		parts = append(parts, fmt.Sprintf("Zoom %d%%", z))
	}

	if len(m.search.Matches) > 0 {
		parts = append(parts, fmt.Sprintf("Match %d/%d", m.search.Cursor+1, len(m.search.Matches)))
	}

	line := StatusStyle.Render(strings.Join(parts, " | "))
	if m.status != "" {
		line += "  " + m.status
	}
	return line
}

// viewConfirm previews a header promotion: the header as it is and the row
// that would replace it. Nothing changes until the user confirms.
func (m Model) viewConfirm() string {
	p := m.pending

	var s strings.Builder
	s.WriteString(TitleStyle.Render(fmt.Sprintf("Use record %d as the header row?", p.Pivot+1)))
	s.WriteString("\n\n")
	s.WriteString(SubtitleStyle.Render("The current header becomes the first data row;\nrows before the record stay in place behind it."))
	s.WriteString("\n\n")
	s.WriteString(LabelStyle.Render("Current header  ") + ValueStyle.Render(joinPreview(p.OldHeader)))
	s.WriteString("\n")
	s.WriteString(LabelStyle.Render("New header      ") + ValueStyle.Render(joinPreview(p.NewHeader)))
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("y/enter: confirm • n/esc: cancel"))

	return BoxStyle.Render(s.String())
}

func joinPreview(cells []string) string {
	const maxPreview = 80
	return runewidth.Truncate(strings.Join(cells, " | "), maxPreview, "…")
}
