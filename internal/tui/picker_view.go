package tui

import (
	"fmt"
	"strings"

	"monthpicker/internal/docs"
	"monthpicker/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 7

func (m pickerModel) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(styleMuted().Render(m.modeLabel()))
	b.WriteString("\n")

	field := renderInputLine(m.text.Width+2, m.text.View())
	if m.focus == focusText {
		field = lipgloss.NewStyle().Bold(true).Render("›") + field
	} else {
		field = " " + field
	}
	b.WriteString(field)
	b.WriteString("\n")

	if m.in.Open() {
		b.WriteString(styleCalendarBox(m.focus == focusCalendar).Render(m.calendarView()))
		b.WriteString("\n")
	}

	if m.status != "" {
		st := styleMuted()
		if m.statusErr {
			st = lipgloss.NewStyle().Foreground(colorError)
		}
		b.WriteString(st.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(styleMuted().Render("tab focus · enter select · [ ] page · y years · ? help · q quit"))
	return cutLines(b.String(), max(m.width, 20))
}

func (m pickerModel) modeLabel() string {
	o := m.in.Options()
	b := m.in.Bound()
	return fmt.Sprintf("%s  %s – %s  (%s)", m.in.Locale().Lang(), b.Min, b.Max, o.Mode)
}

func (m pickerModel) calendarView() string {
	cal := m.in.Calendar()
	header := fmt.Sprintf("‹  %04d – %04d  ›", cal.Page.Start, cal.Page.End())
	if cal.View == model.ViewMonths && cal.SelectedYear != nil {
		header = fmt.Sprintf("‹  %04d  ›", *cal.SelectedYear)
	}

	rows := []string{fitCell(header, gridCols*cellWidth)}
	for r := 0; r < gridCells/gridCols; r++ {
		cells := make([]string, 0, gridCols)
		for c := 0; c < gridCols; c++ {
			cells = append(cells, m.cell(cal.View, r*gridCols+c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m pickerModel) cell(view model.ViewMode, i int) string {
	cal := m.in.Calendar()
	b := m.in.Bound()

	var label string
	var selected, enabled bool
	if view == model.ViewYears {
		year := cal.Page.Start + i
		enabled = m.in.YearSelectable(year)
		if enabled {
			label = fmt.Sprintf("%04d", year)
		}
		selected = cal.SelectedYear != nil && *cal.SelectedYear == year
	} else {
		label = m.in.Locale().MonthName(i)
		enabled = true
		if cal.SelectedYear != nil {
			enabled = b.Contains(model.YearMonth{Month: i, Year: *cal.SelectedYear})
		}
		selected = cal.SelectedMonth != nil && *cal.SelectedMonth == i
	}

	text := fitCell(label, cellWidth)
	switch {
	case m.focus == focusCalendar && i == m.cursor:
		return styleCursor().Render(text)
	case selected:
		return styleSelected().Render(text)
	case !enabled:
		return styleMuted().Render(text)
	}
	return text
}

func (m pickerModel) helpView() string {
	body, _ := docs.Get("keys")
	return docs.Render(body, docs.Style(m.dark), max(m.width, 20)) + "\n\n" + styleMuted().Render("? or esc to close")
}

func cutLines(s string, w int) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = cutLine(ln, w)
	}
	return strings.Join(lines, "\n")
}
