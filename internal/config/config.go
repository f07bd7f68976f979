// Package config loads picker settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"monthpicker/internal/locale"
	"monthpicker/internal/model"
	"monthpicker/internal/picker"

	cerrors "cloudeng.io/errors"
	"github.com/BurntSushi/toml"
)

const fileName = "config.toml"

// Config mirrors config.toml. Dates use the YYYY-MM form with a human month.
type Config struct {
	Lang          string `toml:"lang"`
	Mode          string `toml:"mode"`
	CloseOnSelect bool   `toml:"close_on_select"`
	StartYear     int    `toml:"start_year"`
	MaxYear       int    `toml:"max_year"`
	MinDate       string `toml:"min_date"`
	MaxDate       string `toml:"max_date"`

	I18n locale.Overrides `toml:"i18n"`
	Log  LogConfig        `toml:"log"`
	TUI  TUIConfig        `toml:"tui"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type TUIConfig struct {
	// Theme is one of light|dark|auto.
	Theme string `toml:"theme"`
}

// ConfigError names the offending field.
type ConfigError struct {
	Field   string
	Message string
}

func (e ConfigError) Error() string {
	if e.Field != "" {
		return "config." + e.Field + ": " + e.Message
	}
	return e.Message
}

var ErrInvalidFormat = errors.New("invalid configuration file format")

// Dir is ~/.monthpicker unless MONTHPICKER_CONFIG_DIR overrides it.
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("MONTHPICKER_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".monthpicker"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads path, or the default path when empty. A missing default file yields an empty
// Config; a missing explicit path is an error. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := &Config{}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(b), cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Lang = envOr("MONTHPICKER_LANG", c.Lang)
	c.Mode = envOr("MONTHPICKER_MODE", c.Mode)
	c.Log.File = envOr("MONTHPICKER_LOG_FILE", c.Log.File)
	c.Log.Level = envOr("MONTHPICKER_LOG_LEVEL", c.Log.Level)
	c.TUI.Theme = envOr("MONTHPICKER_TUI_THEME", c.TUI.Theme)
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	errs := &cerrors.M{}
	if _, err := model.ParseMode(c.Mode); err != nil {
		errs.Append(ConfigError{Field: "mode", Message: err.Error()})
	}
	if c.MinDate != "" {
		if _, err := model.ParseYearMonth(c.MinDate); err != nil {
			errs.Append(ConfigError{Field: "min_date", Message: err.Error()})
		}
	}
	if c.MaxDate != "" {
		if _, err := model.ParseYearMonth(c.MaxDate); err != nil {
			errs.Append(ConfigError{Field: "max_date", Message: err.Error()})
		}
	}
	if c.MaxYear < 0 || c.MaxYear > model.MaxYear {
		errs.Append(ConfigError{Field: "max_year", Message: fmt.Sprintf("out of range: %d", c.MaxYear)})
	}
	if n := len(c.I18n.MonthNames); n != 0 && n != 12 {
		errs.Append(ConfigError{Field: "i18n.month_names", Message: fmt.Sprintf("expected 12 names, got %d", n)})
	}
	if f := c.I18n.DateFormat; f != "" && (!strings.Contains(f, "MM") || !strings.Contains(f, "YYYY")) {
		errs.Append(ConfigError{Field: "i18n.date_format", Message: fmt.Sprintf("%q must contain MM and YYYY", f)})
	}
	switch strings.ToLower(c.TUI.Theme) {
	case "", "auto", "light", "dark":
	default:
		errs.Append(ConfigError{Field: "tui.theme", Message: fmt.Sprintf("unknown theme %q (expected light|dark|auto)", c.TUI.Theme)})
	}
	return errs.Err()
}

// Options converts the file settings into picker options. Zero years mean "not set".
func (c *Config) Options() picker.Options {
	var o picker.Options
	o.Mode, _ = model.ParseMode(c.Mode)
	o.CloseOnSelect = c.CloseOnSelect
	if c.StartYear != 0 {
		o.StartYear = model.Int(c.StartYear)
	}
	if c.MaxYear != 0 {
		o.MaxYear = model.Int(c.MaxYear)
	}
	if ym, err := model.ParseYearMonth(c.MinDate); err == nil {
		o.MinDate = &ym
	}
	if ym, err := model.ParseYearMonth(c.MaxDate); err == nil {
		o.MaxDate = &ym
	}
	return o
}

// Locale builds the locale context for the configured language and overrides.
func (c *Config) Locale() *locale.Context {
	return locale.New(c.Lang, &c.I18n)
}
