package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"monthpicker/internal/config"
	"monthpicker/internal/format"
	"monthpicker/internal/locale"
	"monthpicker/internal/logging"
	"monthpicker/internal/model"
	"monthpicker/internal/picker"
	"monthpicker/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath    string
	Lang          string
	Min           string
	Max           string
	MaxYear       int
	StartYear     int
	Year          int
	Month         string
	Mode          string
	CloseOnSelect bool
	Format        string
	PrettyJSON    bool
	LogFile       string
	LogLevel      string

	// CurrentYear pins "now" for the first calendar page; zero uses the clock.
	CurrentYear int

	cfg      *config.Config
	log      *slog.Logger
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "monthpicker",
		Short:        "Pick a month and year from a bounded range",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick interactively; the chosen value is printed on quit
  monthpicker --min 2015-05 --max 2030-08

  # Read a typed mask back into the range (shortcut for: monthpicker parse 13/2031)
  monthpicker --max-year 2020 13/2031

  # Replay calendar clicks
  monthpicker nav --max-year 2035 --year 2020 next year:2030 month:dec
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.ConfigPath)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg

		path := app.LogFile
		if !cmd.Flags().Changed("log-file") {
			path = cfg.Log.File
		}
		level := app.LogLevel
		if !cmd.Flags().Changed("log-level") {
			level = cfg.Log.Level
		}
		// The TUI owns the terminal, so it only logs to a file.
		var fallback io.Writer = cmd.ErrOrStderr()
		if cmd == cmd.Root() {
			fallback = nil
		}
		logger, closeLog, err := logging.Open(path, level, fallback)
		if err != nil {
			return writeErr(cmd, err)
		}
		app.log = logger
		app.closeLog = closeLog
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog != nil {
			return app.closeLog()
		}
		return nil
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigPath, "config", envOr("MONTHPICKER_CONFIG", ""), "Path to config.toml (default: $MONTHPICKER_CONFIG_DIR/config.toml or ~/.monthpicker/config.toml)")
	pf.StringVar(&app.Lang, "lang", "", "Locale tag (en, ja, de, fr, es, pt, it, nl, zh; regional tags like pt-BR are matched)")
	pf.StringVar(&app.Min, "min", "", "Earliest selectable month (YYYY-MM)")
	pf.StringVar(&app.Max, "max", "", "Latest selectable month (YYYY-MM); wins over --max-year")
	pf.IntVar(&app.MaxYear, "max-year", 0, "Latest selectable year (through December)")
	pf.IntVar(&app.StartYear, "start-year", 0, "First year shown on the year grid")
	pf.IntVar(&app.Year, "year", 0, "Initial year")
	pf.StringVar(&app.Month, "month", "", "Initial month (1-12 or a name like mar)")
	pf.StringVar(&app.Mode, "mode", "", "Picker mode (normal|readOnly|calendarOnly)")
	pf.BoolVar(&app.CloseOnSelect, "close-on-select", false, "Close the calendar after a month is picked")
	pf.StringVar(&app.Format, "format", envOr("MONTHPICKER_FORMAT", "json"), "Output format (json|edn|text)")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	pf.StringVar(&app.LogFile, "log-file", "", "Append debug logs to this file")
	pf.StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newBoundCmd(app))
	cmd.AddCommand(newMaskCmd(app))
	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newClampCmd(app))
	cmd.AddCommand(newNavCmd(app))
	cmd.AddCommand(newLocalesCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	o, loc, err := app.options(cmd)
	if err != nil {
		return writeErr(cmd, err)
	}
	in := picker.NewInput(o, loc, app.log)
	r, ok, err := tui.Run(in, app.log, tui.Options{Theme: app.cfg.TUI.Theme})
	if err != nil {
		return writeErr(cmd, logging.LogAndWrap(app.log, "tui", err))
	}
	if !ok {
		return writeErr(cmd, errNoSelection)
	}
	return writeOut(cmd, app, r)
}

// options merges flags over the config file (which already carries env overrides).
func (app *App) options(cmd *cobra.Command) (picker.Options, *locale.Context, error) {
	cfg := app.cfg
	if cfg == nil {
		cfg = &config.Config{}
	}
	o := cfg.Options()
	o.CurrentYear = app.CurrentYear
	flags := cmd.Flags()

	if flags.Changed("mode") {
		mode, err := model.ParseMode(app.Mode)
		if err != nil {
			return o, nil, flagError{flag: "mode", value: app.Mode, err: err}
		}
		o.Mode = mode
	}
	if flags.Changed("close-on-select") {
		o.CloseOnSelect = app.CloseOnSelect
	}
	if flags.Changed("min") {
		ym, err := model.ParseYearMonth(app.Min)
		if err != nil {
			return o, nil, flagError{flag: "min", value: app.Min, err: err}
		}
		o.MinDate = &ym
	}
	if flags.Changed("max") {
		ym, err := model.ParseYearMonth(app.Max)
		if err != nil {
			return o, nil, flagError{flag: "max", value: app.Max, err: err}
		}
		o.MaxDate = &ym
	}
	if flags.Changed("max-year") {
		o.MaxYear = model.Int(app.MaxYear)
	}
	if flags.Changed("start-year") {
		o.StartYear = model.Int(app.StartYear)
	}
	if flags.Changed("year") {
		o.Year = model.Int(app.Year)
	}
	if flags.Changed("month") {
		m, err := parseMonthFlag(app.Month)
		if err != nil {
			return o, nil, flagError{flag: "month", value: app.Month, err: err}
		}
		o.Month = model.Int(m)
	}

	overrides := cfg.I18n
	lang := cfg.Lang
	if flags.Changed("lang") {
		lang = app.Lang
	}
	return o, locale.New(lang, &overrides), nil
}

type envelope struct {
	Data any `json:"data"`
}

// Text renders the payload for --format text.
func (e envelope) Text() string {
	if t, ok := e.Data.(format.Texter); ok {
		return t.Text()
	}
	b, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Sprint(e.Data)
	}
	return string(b)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), envelope{Data: v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
