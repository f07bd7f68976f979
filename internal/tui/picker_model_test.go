package tui

import (
	"strings"
	"testing"

	"monthpicker/internal/locale"
	"monthpicker/internal/model"
	"monthpicker/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(o picker.Options) pickerModel {
	o.CurrentYear = 2026
	return newPickerModel(picker.NewInput(o, locale.New("en", nil), nil), nil)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, m pickerModel, keys ...string) (pickerModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var mm tea.Model
		mm, cmd = m.Update(keyMsg(k))
		var ok bool
		m, ok = mm.(pickerModel)
		if !ok {
			t.Fatalf("unexpected model type %T", mm)
		}
	}
	return m, cmd
}

func TestPickerModel_TypeAndCommit(t *testing.T) {
	t.Parallel()

	m := newTestModel(picker.Options{MaxYear: model.Int(2020)})
	if m.focus != focusText || !m.in.Open() {
		t.Fatalf("expected text focus with the calendar open")
	}
	m, _ = press(t, m, "1", "3", "/", "2", "0", "3", "1", "enter")
	r, ok := m.in.Result()
	if !ok || r != (picker.Result{Masked: "12/2020", Year: 2020, Month: 11}) {
		t.Fatalf("unexpected result: %+v %v", r, ok)
	}
	if m.text.Value() != "12/2020" {
		t.Fatalf("expected the field to show the clamped mask, got %q", m.text.Value())
	}
}

func TestPickerModel_InvalidTextReverts(t *testing.T) {
	t.Parallel()

	m := newTestModel(picker.Options{Year: model.Int(2015), Month: model.Int(3)})
	m.text.SetValue("1x/2015")
	m.in.SetText(m.text.Value())
	m, _ = press(t, m, "enter")
	if m.text.Value() != "04/2015" || !m.statusErr {
		t.Fatalf("expected revert with an error status, got %q %q", m.text.Value(), m.status)
	}
}

func TestPickerModel_CalendarSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(picker.Options{
		MinDate:   &model.YearMonth{Month: 4, Year: 2015},
		MaxDate:   &model.YearMonth{Month: 7, Year: 2030},
		StartYear: model.Int(2014),
	})
	m, _ = press(t, m, "tab")
	if m.focus != focusCalendar || m.in.Calendar().View != model.ViewYears {
		t.Fatalf("expected calendar focus on the year grid")
	}
	if m.in.Calendar().Page.Start != 2015 {
		t.Fatalf("expected page clamped to the min year, got %d", m.in.Calendar().Page.Start)
	}

	// Cell 1 of the page starting at 2015 is 2016.
	m, _ = press(t, m, "right", "enter")
	if c := m.in.Calendar(); c.View != model.ViewMonths || *c.SelectedYear != 2016 {
		t.Fatalf("expected month grid for 2016, got %+v", c)
	}

	// Row 1, col 1 is month index 4 (May).
	m, _ = press(t, m, "down", "right", "enter")
	r, ok := m.in.Result()
	if !ok || r.Masked != "05/2016" {
		t.Fatalf("unexpected result: %+v %v", r, ok)
	}
	if m.text.Value() != "05/2016" {
		t.Fatalf("expected text to follow the calendar, got %q", m.text.Value())
	}
}

func TestPickerModel_PagingAndYearView(t *testing.T) {
	t.Parallel()

	m := newTestModel(picker.Options{Year: model.Int(2020), MaxYear: model.Int(2035)})
	m, _ = press(t, m, "tab", "]")
	if c := m.in.Calendar(); c.Page.Start != 2024 || c.View != model.ViewYears {
		t.Fatalf("expected pinned page 2024, got %+v", c)
	}
	m, _ = press(t, m, "[", "[")
	if m.in.Calendar().Page.Start != 2000 {
		t.Fatalf("expected page 2000, got %d", m.in.Calendar().Page.Start)
	}
	m, _ = press(t, m, "pgdown")
	if m.in.Calendar().Page.Start != 2012 {
		t.Fatalf("expected page 2012, got %d", m.in.Calendar().Page.Start)
	}
	m, _ = press(t, m, "y")
	if m.cursor != 8 {
		t.Fatalf("expected cursor on 2020, got %d", m.cursor)
	}
}

func TestPickerModel_YearsPastMaxAreBlank(t *testing.T) {
	t.Parallel()

	m := newTestModel(picker.Options{MaxYear: model.Int(2030), StartYear: model.Int(2025)})
	m, _ = press(t, m, "tab")
	view := m.View()
	if !strings.Contains(view, "2030") || strings.Contains(view, "2031") {
		t.Fatalf("expected 2031+ to be blank:\n%s", view)
	}

	// Cell 11 on page 2025 is 2036, past the bound.
	m.cursor = 11
	m, _ = press(t, m, "enter")
	if m.in.Calendar().SelectedYear != nil {
		t.Fatalf("expected a blank year cell to ignore enter")
	}

	// Paging forward keeps the max year on the last page.
	m, _ = press(t, m, "]")
	if start := m.in.Calendar().Page.Start; start != 2019 {
		t.Fatalf("expected page 2019, got %d", start)
	}
}

func TestPickerModel_ReadOnly(t *testing.T) {
	t.Parallel()

	m := newTestModel(picker.Options{Year: model.Int(2020), Month: model.Int(1), Mode: model.ModeReadOnly})
	if m.focus != focusCalendar {
		t.Fatalf("expected calendar focus when typing is disabled")
	}
	m, _ = press(t, m, "right", "enter", "]")
	if r, _ := m.in.Result(); r.Masked != "02/2020" {
		t.Fatalf("expected read-only value unchanged, got %+v", r)
	}
	if !m.statusErr {
		t.Fatalf("expected a read-only status")
	}
	m, _ = press(t, m, "y")
	if m.in.Calendar().View != model.ViewYears {
		t.Fatalf("expected year view to work when read-only")
	}
	m, _ = press(t, m, "tab")
	if m.focus != focusCalendar {
		t.Fatalf("expected tab to keep calendar focus when typing is disabled")
	}
}

func TestPickerModel_EscClosesAndHelpToggles(t *testing.T) {
	t.Parallel()

	m := newTestModel(picker.Options{})
	m, _ = press(t, m, "tab", "esc")
	if m.in.Open() {
		t.Fatalf("expected esc to close the calendar")
	}
	m, _ = press(t, m, "enter")
	if !m.in.Open() {
		t.Fatalf("expected enter to reopen the calendar")
	}

	m, _ = press(t, m, "?")
	if !m.showHelp || !strings.Contains(m.View(), "Keys") {
		t.Fatalf("expected help overlay")
	}
	m, _ = press(t, m, "esc")
	if m.showHelp || !m.in.Open() {
		t.Fatalf("expected esc to close only the help")
	}
}

func TestPickerModel_Quit(t *testing.T) {
	t.Parallel()

	m := newTestModel(picker.Options{})
	m, cmd := press(t, m, "ctrl+c")
	if cmd == nil || !m.cancelled {
		t.Fatalf("expected ctrl+c to cancel and quit")
	}

	m = newTestModel(picker.Options{})
	m, cmd = press(t, m, "tab", "q")
	if cmd == nil || m.cancelled {
		t.Fatalf("expected q to quit without cancelling")
	}
}

func TestFitCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"Jan", 7, "  Jan  "},
		{"2015", 7, " 2015  "},
		{"", 3, "   "},
		{"September", 5, "Sept…"},
		{"1月", 6, " 1月  "},
	}
	for _, tt := range tests {
		if got := fitCell(tt.in, tt.w); got != tt.want {
			t.Fatalf("fitCell(%q, %d) = %q, want %q", tt.in, tt.w, got, tt.want)
		}
	}
}

func TestDarkFromColorFGBG(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		dark, ok bool
	}{
		{"15;0", true, true},
		{"0;15", false, true},
		{"0;default;15", false, true},
		{"", false, false},
		{"x", false, false},
	}
	for _, tt := range tests {
		dark, ok := darkFromColorFGBG(tt.in)
		if dark != tt.dark || ok != tt.ok {
			t.Fatalf("darkFromColorFGBG(%q) = %v,%v", tt.in, dark, ok)
		}
	}
}
