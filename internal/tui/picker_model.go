package tui

import (
	"io"
	"log/slog"

	"monthpicker/internal/model"
	"monthpicker/internal/picker"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerFocus int

const (
	focusText pickerFocus = iota
	focusCalendar
)

const (
	gridCols  = 3
	gridCells = picker.PageSize
)

type pickerModel struct {
	in  *picker.Input
	log *slog.Logger

	text     textinput.Model
	accepted string
	focus    pickerFocus
	cursor   int

	width    int
	height   int
	dark     bool
	showHelp bool

	status    string
	statusErr bool
	cancelled bool
}

func newPickerModel(in *picker.Input, logger *slog.Logger) pickerModel {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := pickerModel{in: in, log: logger, width: 40}

	m.text = textinput.New()
	m.text.Prompt = ""
	m.text.Placeholder = in.Placeholder()
	m.text.CharLimit = len(in.Placeholder())
	m.text.Width = len(in.Placeholder()) + 1
	m.syncText()

	m.in.Focus()
	if in.Editable() {
		m.focus = focusText
		m.text.Focus()
	} else {
		m.focus = focusCalendar
	}
	m.cursor = m.selectedCell()
	return m
}

func (m pickerModel) Init() tea.Cmd {
	if m.focus == focusText {
		return textinput.Blink
	}
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		if m.showHelp {
			switch key {
			case "?", "esc", "q", "enter":
				m.showHelp = false
			}
			return m, nil
		}
		switch key {
		case "?":
			m.showHelp = true
			return m, nil
		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil
		}
		if m.focus == focusText {
			return m.updateText(msg)
		}
		return m.updateCalendar(key)
	}

	if m.focus == focusText {
		var cmd tea.Cmd
		m.text, cmd = m.text.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m pickerModel) updateText(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.commitText()
		return m, nil
	case "esc":
		m.in.ClickOutside()
		return m, nil
	}
	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	m.in.SetText(m.text.Value())
	return m, cmd
}

func (m pickerModel) updateCalendar(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		m.in.ClickOutside()
		return m, nil
	}
	if !m.in.Open() {
		if key == "enter" {
			m.in.Focus()
		}
		return m, nil
	}

	switch key {
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-gridCols)
	case "down", "j":
		m.moveCursor(gridCols)
	case "[", "pgup":
		if !m.in.PagePrevious() {
			m.setStatus("read-only", true)
		}
	case "]", "pgdown":
		if !m.in.PageNext() {
			m.setStatus("read-only", true)
		}
	case "y":
		m.in.RequestYearView()
		m.cursor = m.selectedCell()
	case "enter":
		m.selectCell()
	}
	return m, nil
}

func (m *pickerModel) toggleFocus() {
	if m.focus == focusText {
		m.commitText()
		m.text.Blur()
		m.focus = focusCalendar
		m.in.Focus()
		m.cursor = m.selectedCell()
		return
	}
	if !m.in.Editable() {
		return
	}
	m.in.ClickOutside()
	m.focus = focusText
	m.text.Focus()
}

// commitText pushes the typed text through the picker. An untouched field is left alone.
func (m *pickerModel) commitText() {
	typed := m.text.Value()
	if typed == m.accepted {
		return
	}
	m.in.SetText(m.text.Value())
	r, ok := m.in.Commit()
	m.syncText()
	if !ok {
		m.setStatus("expected "+m.in.Placeholder(), true)
		return
	}
	m.setStatus("selected "+r.Masked, false)
	m.cursor = m.selectedCell()
}

func (m *pickerModel) selectCell() {
	cal := m.in.Calendar()
	var (
		r  picker.Result
		ok bool
	)
	if cal.View == model.ViewYears {
		year := cal.Page.Start + m.cursor
		if !m.in.YearSelectable(year) {
			return
		}
		r, ok = m.in.SelectYear(year)
	} else {
		r, ok = m.in.SelectMonth(m.cursor)
	}
	if !ok {
		m.setStatus("read-only", true)
		return
	}
	m.syncText()
	m.setStatus("selected "+r.Masked, false)
	m.cursor = m.selectedCell()
}

func (m *pickerModel) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= gridCells {
		return
	}
	m.cursor = next
}

// selectedCell is the grid index of the current selection in the visible view, or 0.
func (m pickerModel) selectedCell() int {
	cal := m.in.Calendar()
	switch {
	case cal.View == model.ViewMonths && cal.SelectedMonth != nil:
		return min(max(*cal.SelectedMonth, 0), gridCells-1)
	case cal.View == model.ViewYears && cal.SelectedYear != nil && cal.Page.Contains(*cal.SelectedYear):
		return *cal.SelectedYear - cal.Page.Start
	}
	return 0
}

// syncText shows the accepted mask, or an empty field (so the placeholder shows) when nothing
// is set yet.
func (m *pickerModel) syncText() {
	v := m.in.Value()
	m.accepted = ""
	if v.HasMonth() || v.HasYear() {
		m.accepted = m.in.Text()
	}
	m.text.SetValue(m.accepted)
	m.text.CursorEnd()
}

func (m *pickerModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
	if isErr {
		m.log.Debug("picker status", "status", s)
	}
}
