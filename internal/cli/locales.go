package cli

import (
	"strings"

	"monthpicker/internal/locale"

	"github.com/spf13/cobra"
)

type localeOut struct {
	Lang       string   `json:"lang"`
	DateFormat string   `json:"dateFormat"`
	MonthNames []string `json:"monthNames"`
}

type localesOut []localeOut

func (l localesOut) Text() string {
	lines := make([]string, 0, len(l))
	for _, lo := range l {
		lines = append(lines, lo.Lang+" "+lo.DateFormat+" "+strings.Join(lo.MonthNames, ","))
	}
	return strings.Join(lines, "\n")
}

func newLocalesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locales [tag]",
		Short: "List built-in locales, or show the one a tag resolves to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			langs := locale.Languages()
			if len(args) == 1 {
				langs = []string{locale.Match(args[0])}
			}
			out := make(localesOut, 0, len(langs))
			for _, l := range langs {
				ctx := locale.New(l, nil)
				out = append(out, localeOut{Lang: ctx.Lang(), DateFormat: ctx.DateFormat(), MonthNames: ctx.MonthNames()})
			}
			return writeOut(cmd, app, out)
		},
	}
}
