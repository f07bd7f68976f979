package picker

import (
	"errors"
	"io"
	"log/slog"

	"monthpicker/internal/locale"
	"monthpicker/internal/model"
)

// Options are the caller-facing picker settings.
type Options struct {
	Year          *int
	Month         *int
	MinDate       *model.YearMonth
	MaxDate       *model.YearMonth
	MaxYear       *int
	StartYear     *int
	Mode          model.Mode
	CloseOnSelect bool

	// CurrentYear pins "now" for the first page; zero uses the clock.
	CurrentYear int
}

// Bound resolves the options' range.
func (o Options) Bound() model.DateBound {
	return Resolve(o.MinDate, o.MaxDate, o.MaxYear)
}

// Result is reported upward after every accepted change.
type Result struct {
	Masked string `json:"masked"`
	Year   int    `json:"year"`
	Month  int    `json:"month"`
}

// Text is the masked line printed by the text output format.
func (r Result) Text() string { return r.Masked }

// Input holds the state of one picker surface: the masked text, the committed value, the
// calendar and whether it is open. It is owned by a single renderer and is not safe for
// concurrent use.
type Input struct {
	opts  Options
	loc   *locale.Context
	log   *slog.Logger
	bound model.DateBound

	cal   Calendar
	value model.DateValue
	text  string
	open  bool
}

// NewInput builds an Input. A nil locale uses the default language; a nil logger discards.
func NewInput(o Options, loc *locale.Context, logger *slog.Logger) *Input {
	if loc == nil {
		loc = locale.New(locale.DefaultLang, nil)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	in := &Input{loc: loc, log: logger}
	in.SetOptions(o)
	return in
}

// SetOptions recomputes the bound and resets value and calendar from o.
func (in *Input) SetOptions(o Options) {
	if o.Mode == "" {
		o.Mode = model.ModeNormal
	}
	in.opts = o
	in.bound = o.Bound()
	in.value = model.DateValue{Month: o.Month, Year: o.Year}
	in.cal = NewCalendar(CalendarOptions{
		Year:        o.Year,
		Month:       o.Month,
		StartYear:   o.StartYear,
		ReadOnly:    o.Mode == model.ModeReadOnly,
		CurrentYear: o.CurrentYear,
	}, in.bound)
	in.text = ToMask(in.value, in.loc.Layout())
	in.log.Debug("picker options applied",
		"bound_min", in.bound.Min.String(),
		"bound_max", in.bound.Max.String(),
		"mode", string(o.Mode),
		"page_start", in.cal.Page.Start)
}

// SetLocale switches the locale and re-renders the text for it.
func (in *Input) SetLocale(loc *locale.Context) {
	if loc == nil {
		return
	}
	in.loc = loc
	in.text = ToMask(in.value, loc.Layout())
}

func (in *Input) Text() string              { return in.text }
func (in *Input) Value() model.DateValue    { return in.value }
func (in *Input) Bound() model.DateBound    { return in.bound }
func (in *Input) Calendar() Calendar        { return in.cal }
func (in *Input) Locale() *locale.Context   { return in.loc }
func (in *Input) Options() Options          { return in.opts }
func (in *Input) Open() bool                { return in.open }
func (in *Input) Placeholder() string       { return in.loc.DateFormat() }
func (in *Input) Template() string          { return InputTemplate(in.loc.DateFormat()) }
func (in *Input) Editable() bool            { return in.opts.Mode == model.ModeNormal }
func (in *Input) CloseOnSelect() bool       { return in.opts.CloseOnSelect }
func (in *Input) ReadOnly() bool            { return in.cal.ReadOnly }
func (in *Input) YearSelectable(y int) bool { return YearSelectable(y, in.bound) }

// Result reports the last accepted value, or false while month or year is still missing.
func (in *Input) Result() (Result, bool) {
	if !in.value.Complete() {
		return Result{}, false
	}
	return Result{Masked: ToMask(in.value, in.loc.Layout()), Year: *in.value.Year, Month: *in.value.Month}, true
}

// Focus opens the calendar.
func (in *Input) Focus() { in.open = true }

// ClickOutside closes the calendar; the renderer decides what counts as outside.
func (in *Input) ClickOutside() { in.open = false }

// SetText replaces the typed text. It is ignored unless the mode allows typing.
func (in *Input) SetText(s string) {
	if !in.Editable() {
		return
	}
	in.text = s
}

// Commit reads the typed text back, clamps it and reports the result. Text that cannot be
// read is replaced by the last accepted mask and false is returned.
func (in *Input) Commit() (Result, bool) {
	v, err := ParseMask(in.text, in.loc.Layout())
	if err == nil && !v.HasYear() && !v.HasMonth() {
		err = &MaskError{Text: in.text, Err: ErrMaskIncomplete}
	}
	if err != nil {
		var me *MaskError
		if errors.As(err, &me) {
			in.log.Debug("mask rejected", "text", me.Text, "reason", me.Err.Error())
		}
		in.text = ToMask(in.value, in.loc.Layout())
		return Result{}, false
	}
	r := in.apply(v)
	in.cal = in.cal.WithValue(in.value, in.bound)
	return r, true
}

// SelectYear forwards a year-cell click to the calendar.
func (in *Input) SelectYear(year int) (Result, bool) {
	cal, ch, ok := in.cal.SelectYear(year, in.bound)
	if !ok {
		return Result{}, false
	}
	in.cal = cal
	return in.apply(ch), true
}

// SelectMonth forwards a month-cell click to the calendar.
func (in *Input) SelectMonth(month int) (Result, bool) {
	cal, ch, ok := in.cal.SelectMonth(month, in.bound)
	if !ok {
		return Result{}, false
	}
	in.cal = cal
	r := in.apply(ch)
	if in.opts.CloseOnSelect {
		in.open = false
	}
	return r, true
}

func (in *Input) PagePrevious() bool {
	cal, ok := in.cal.PagePrevious(in.bound)
	in.cal = cal
	return ok
}

func (in *Input) PageNext() bool {
	cal, ok := in.cal.PageNext(in.bound)
	in.cal = cal
	return ok
}

func (in *Input) RequestYearView() { in.cal = in.cal.RequestYearView() }

// apply runs a candidate through the mask and the clamp, the same path typed text takes, and
// stores the outcome. The calendar selection follows the clamped value.
func (in *Input) apply(ch Change) Result {
	layout := in.loc.Layout()
	masked := ToMask(ch, layout)
	v, err := ParseMask(masked, layout)
	if err != nil {
		v = ch
	}
	ym := FromMask(v, in.bound)

	in.value = model.ValueOf(ym)
	in.text = ToMask(in.value, layout)
	in.cal.SelectedYear = model.Int(ym.Year)
	in.cal.SelectedMonth = model.Int(ym.Month)

	r := Result{Masked: in.text, Year: ym.Year, Month: ym.Month}
	in.log.Debug("picker value changed", "masked", r.Masked, "year", r.Year, "month", r.Month)
	return r
}
