package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nconklindev/tabv/internal/dataset"
	"github.com/nconklindev/tabv/internal/loader"
	"github.com/nconklindev/tabv/internal/settings"
	"github.com/nconklindev/tabv/internal/view"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	statePicker state = iota
	stateBrowse
)

type Model struct {
	state      state
	filepicker filepicker.Model

	path  string
	data  *dataset.Dataset
	coord *view.Coordinator

	search      dataset.SearchState
	searchInput textinput.Model
	searching   bool

	// pending holds a header promotion awaiting confirmation.
	pending *dataset.Promotion

	// tableCursor is the highlighted row in table mode. It only becomes
	// the shared current record when the row is activated.
	tableCursor int

	settings *settings.Settings

	keys   keyMap
	help   help.Model
	width  int
	height int
	status string
}

type fileLoadedMsg struct {
	path   string
	header []string
	rows   [][]string
	err    error
}

// InitialModel builds the starting model. When path is non-empty the file
// is loaded on startup; otherwise the picker is shown.
func InitialModel(path string, st *settings.Settings) Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".csv", ".xlsx"}
	fp.CurrentDirectory, _ = os.Getwd()

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C42"))
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB84D"))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C42")).Bold(true)

	si := textinput.New()
	si.Placeholder = "search..."
	si.Prompt = "/"

	if st == nil {
		st = &settings.Settings{}
	}

	return Model{
		state:       statePicker,
		filepicker:  fp,
		path:        path,
		coord:       view.NewCoordinator(),
		searchInput: si,
		settings:    st,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	if m.path != "" {
		return m.loadFile(m.path)
	}
	return m.filepicker.Init()
}

func (m Model) loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		header, rows, err := loader.Read(path)
		return fileLoadedMsg{path: path, header: header, rows: rows, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		pickerHeight := msg.Height - 8
		if pickerHeight < 5 {
			pickerHeight = 5
		}
		m.filepicker.SetHeight(pickerHeight)
		return m, nil

	case fileLoadedMsg:
		return m.handleFileLoaded(msg)

	case tea.KeyMsg:
		switch m.state {
		case statePicker:
			return m.updatePicker(msg)
		case stateBrowse:
			return m.updateBrowse(msg)
		}
	}

	if m.state == statePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFileLoaded(msg fileLoadedMsg) (tea.Model, tea.Cmd) {
	install := func(err error) (tea.Model, tea.Cmd) {
		// A failed load keeps whatever was on screen before it.
		m.status = ErrorStyle.Render(err.Error())
		if m.data == nil {
			m.state = statePicker
			return m, m.filepicker.Init()
		}
		return m, nil
	}

	if msg.err != nil {
		return install(msg.err)
	}

	ds, err := dataset.Load(msg.header, msg.rows)
	if err != nil {
		return install(fmt.Errorf("%s: %w", filepath.Base(msg.path), err))
	}

	m.data = ds
	m.path = msg.path
	m.coord.Reset(ds.RowCount())
	m.search = dataset.SearchState{Cursor: -1}
	m.searching = false
	m.searchInput.Reset()
	m.pending = nil
	m.tableCursor = 0
	m.state = stateBrowse
	m.status = MessageStyle.Render(fmt.Sprintf("Loaded %d rows, %d columns", ds.RowCount(), ds.ColumnCount()))

	m.settings.Touch(msg.path)
	_ = m.settings.Save() // settings are best-effort

	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		if m.data != nil {
			m.state = stateBrowse
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)
	if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
		return m, m.loadFile(path)
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pending != nil {
		return m.updateConfirm(msg)
	}
	if m.searching {
		return m.updateSearchInput(msg)
	}

	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		_ = m.settings.Save()
		return m, tea.Quit

	case key.Matches(msg, keys.Open):
		m.state = statePicker
		return m, m.filepicker.Init()

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, keys.Toggle):
		if m.coord.Mode() == view.ModeRecord {
			m.tableCursor = m.coord.Current()
			if m.tableCursor < 0 {
				m.tableCursor = 0
			}
		}
		m.coord.Toggle()
		m.status = ""

	case key.Matches(msg, keys.ZoomIn):
		z := m.coord.AdjustZoom(m.coord.Mode(), 1)
		m.status = StatusStyle.Render(fmt.Sprintf("Zoom: %d%%", zoomPercent(z)))

	case key.Matches(msg, keys.ZoomOut):
		z := m.coord.AdjustZoom(m.coord.Mode(), -1)
		m.status = StatusStyle.Render(fmt.Sprintf("Zoom: %d%%", zoomPercent(z)))

	default:
		if m.coord.Mode() == view.ModeRecord {
			return m.updateRecordKeys(msg)
		}
		return m.updateTableKeys(msg)
	}
	return m, nil
}

func (m Model) updateRecordKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Prev):
		m.coord.Navigate(-1)
		m.status = ""

	case key.Matches(msg, keys.Next):
		m.coord.Navigate(1)
		m.status = ""

	case key.Matches(msg, keys.Up):
		m.scrollRecord(-1)

	case key.Matches(msg, keys.Down):
		m.scrollRecord(1)

	case key.Matches(msg, keys.Promote):
		return m.startPromotion()
	}
	return m, nil
}

func (m Model) updateTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Up):
		m.moveTableCursor(-1)

	case key.Matches(msg, keys.Down):
		m.moveTableCursor(1)

	case key.Matches(msg, keys.Prev):
		m.scrollTableColumns(-1)

	case key.Matches(msg, keys.Next):
		m.scrollTableColumns(1)

	case key.Matches(msg, keys.Select):
		if m.data != nil && m.data.RowCount() > 0 {
			m.coord.SelectFromTable(m.tableCursor)
			m.status = ""
		}

	case key.Matches(msg, keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.search.Query)
		m.searchInput.CursorEnd()
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.NextMatch):
		m.stepMatch(true)

	case key.Matches(msg, keys.PrevMatch):
		m.stepMatch(false)

	case msg.String() == "esc":
		if m.search.Query != "" {
			m.search = dataset.SearchState{Cursor: -1}
			m.status = ""
		}
	}
	return m, nil
}

func (m Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.search = dataset.Search(m.data, m.searchInput.Value())
		if match, ok := m.search.Current(); ok {
			m.tableCursor = match.Row
			m.ensureCellVisible(match)
		} else if m.search.Query != "" {
			m.status = StatusStyle.Render("No matches found")
		}
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		return m.applyPromotion()
	case "n", "N", "esc":
		m.pending = nil
		m.status = ""
		return m, nil
	}
	return m, nil
}

func (m Model) startPromotion() (tea.Model, tea.Cmd) {
	if m.data == nil || m.coord.Current() < 0 {
		return m, nil
	}
	p, err := m.data.PreviewPromotion(m.coord.Current())
	if err != nil {
		// Single-row guard and friends surface as a status message; the
		// dataset is untouched.
		m.status = ErrorStyle.Render(err.Error())
		return m, nil
	}
	m.pending = &p
	return m, nil
}

func (m Model) applyPromotion() (tea.Model, tea.Cmd) {
	p := m.pending
	m.pending = nil

	next, err := m.data.Promote(p.Pivot)
	if err != nil {
		m.status = ErrorStyle.Render(err.Error())
		return m, nil
	}

	m.data = next
	m.coord.Clamp(next.RowCount())
	if m.tableCursor > next.RowCount()-1 {
		m.tableCursor = next.RowCount() - 1
	}

	// Coordinates from the old dataset are meaningless now; search again
	// against the replacement.
	if m.search.Query != "" {
		m.search = dataset.Search(next, m.search.Query)
	}

	m.status = MessageStyle.Render("Header row updated")
	return m, nil
}

func (m *Model) stepMatch(forward bool) {
	if len(m.search.Matches) == 0 {
		return
	}
	if forward {
		m.search = m.search.Next()
	} else {
		m.search = m.search.Previous()
	}
	if match, ok := m.search.Current(); ok {
		m.tableCursor = match.Row
		m.ensureCellVisible(match)
	}
}

func zoomPercent(z float64) int {
	return int(z*100 + 0.5)
}
