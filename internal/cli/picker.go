package cli

import (
	"strconv"
	"strings"

	"monthpicker/internal/locale"
	"monthpicker/internal/logging"
	"monthpicker/internal/model"
	"monthpicker/internal/picker"

	"github.com/spf13/cobra"
)

type boundOut struct {
	model.DateBound
}

func (b boundOut) Text() string { return b.Min.String() + ".." + b.Max.String() }

func newBoundCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "bound",
		Short: "Print the resolved selectable range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, _, err := app.options(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, boundOut{o.Bound()})
		},
	}
}

type maskOut struct {
	Masked      string          `json:"masked"`
	Placeholder string          `json:"placeholder"`
	Template    string          `json:"template"`
	Value       model.DateValue `json:"value"`
}

func (m maskOut) Text() string { return m.Masked }

func newMaskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mask",
		Short: "Render --year/--month as locale mask text (no clamping)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, loc, err := app.options(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			v := model.DateValue{Month: o.Month, Year: o.Year}
			return writeOut(cmd, app, maskOut{
				Masked:      picker.ToMask(v, loc.Layout()),
				Placeholder: loc.DateFormat(),
				Template:    picker.InputTemplate(loc.DateFormat()),
				Value:       v,
			})
		},
	}
}

func newParseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Read mask text back and clamp it into the range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, loc, err := app.options(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			text := strings.TrimSpace(args[0])
			v, err := picker.ParseMask(text, loc.Layout())
			if err == nil && !v.HasMonth() && !v.HasYear() {
				err = &picker.MaskError{Text: text, Err: picker.ErrMaskIncomplete}
			}
			if err != nil {
				return writeErr(cmd, logging.LogAndWrap(app.log, "parse", err, "text", text, "lang", loc.Lang()))
			}
			return writeOut(cmd, app, clampResult(v, o.Bound(), loc.Layout()))
		},
	}
}

func newClampCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clamp",
		Short: "Clamp --year/--month into the range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, loc, err := app.options(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			v := model.DateValue{Month: o.Month, Year: o.Year}
			return writeOut(cmd, app, clampResult(v, o.Bound(), loc.Layout()))
		},
	}
}

type navOut struct {
	Calendar picker.Calendar `json:"calendar"`
	Changes  []picker.Result `json:"changes"`
	Ignored  []string        `json:"ignored"`
	Value    *picker.Result  `json:"value"`
}

func (n navOut) Text() string {
	if n.Value == nil {
		return ""
	}
	return n.Value.Masked
}

func newNavCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "nav <op>...",
		Short: "Replay calendar events and print the resulting state",
		Long: strings.TrimSpace(`
Ops are applied in order:
  year:N    click year N on the year grid
  month:M   click month M (1-12 or a name) on the month grid
  prev      previous page of years
  next      next page of years
  years     back to the year grid

Ops the calendar rejects (read-only mode, blank year cells) are listed under "ignored".
`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, loc, err := app.options(cmd)
			if err != nil {
				return writeErr(cmd, err)
			}
			in := picker.NewInput(o, loc, app.log)
			out := navOut{Changes: []picker.Result{}, Ignored: []string{}}
			for _, op := range args {
				r, changed, accepted, err := applyNavOp(in, op)
				if err != nil {
					return writeErr(cmd, err)
				}
				if changed {
					out.Changes = append(out.Changes, r)
				}
				if !accepted {
					out.Ignored = append(out.Ignored, op)
				}
			}
			out.Calendar = in.Calendar()
			if r, ok := in.Result(); ok {
				out.Value = &r
			}
			return writeOut(cmd, app, out)
		},
	}
}

// applyNavOp runs one op. changed is true when a Result was reported; accepted is false when
// the calendar ignored the op.
func applyNavOp(in *picker.Input, op string) (r picker.Result, changed, accepted bool, err error) {
	name, arg, _ := strings.Cut(strings.ToLower(strings.TrimSpace(op)), ":")
	switch name {
	case "year":
		y, perr := strconv.Atoi(arg)
		if perr != nil {
			return r, false, false, flagError{flag: "nav year", value: arg, err: perr}
		}
		if !in.YearSelectable(y) {
			return r, false, false, nil
		}
		r, accepted = in.SelectYear(y)
		return r, accepted, accepted, nil
	case "month":
		m, perr := parseMonthFlag(arg)
		if perr != nil {
			return r, false, false, flagError{flag: "nav month", value: arg, err: perr}
		}
		r, accepted = in.SelectMonth(m)
		return r, accepted, accepted, nil
	case "prev":
		return r, false, in.PagePrevious(), nil
	case "next":
		return r, false, in.PageNext(), nil
	case "years":
		in.RequestYearView()
		return r, false, true, nil
	}
	return r, false, false, unknownOpError{op: op}
}

func clampResult(v model.DateValue, b model.DateBound, l locale.Layout) picker.Result {
	ym := picker.FromMask(v, b)
	return picker.Result{Masked: picker.ToMask(model.ValueOf(ym), l), Year: ym.Year, Month: ym.Month}
}
