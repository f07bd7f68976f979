// Package tui renders a picker.Input in the terminal with bubbletea.
package tui

import (
	"fmt"
	"io"
	"log/slog"

	"monthpicker/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configure one interactive session.
type Options struct {
	// Theme is light|dark|auto; empty defers to MONTHPICKER_TUI_THEME.
	Theme  string
	Input  io.Reader
	Output io.Writer
}

// Run shows the picker until the user quits and returns the final value. The bool is false
// when no complete month and year was chosen.
func Run(in *picker.Input, logger *slog.Logger, o Options) (picker.Result, bool, error) {
	applyColorProfilePreference()
	dark := applyThemePreference(o.Theme)

	m := newPickerModel(in, logger)
	m.dark = dark

	var popts []tea.ProgramOption
	if o.Input != nil {
		popts = append(popts, tea.WithInput(o.Input))
	}
	if o.Output != nil {
		popts = append(popts, tea.WithOutput(o.Output))
	}
	final, err := tea.NewProgram(m, popts...).Run()
	if err != nil {
		return picker.Result{}, false, fmt.Errorf("run picker: %w", err)
	}
	fm, ok := final.(pickerModel)
	if !ok || fm.cancelled {
		return picker.Result{}, false, nil
	}
	r, ok := fm.in.Result()
	return r, ok, nil
}
