// Package locale supplies the date-field order and month names a picker renders with.
//
// A Context is built once per locale change and shared by pointer; it is never mutated.
package locale

import (
	"sort"
	"strings"

	"monthpicker/internal/model"

	"golang.org/x/text/language"
)

// Translator is the capability the picker consumes. DateFormat contains the tokens M and Y
// in locale order (e.g. "MM/YYYY").
type Translator interface {
	Lang() string
	DateFormat() string
	MonthNames() []string
}

// Overrides partially replaces a built-in table. Empty fields keep the table's value.
type Overrides struct {
	DateFormat string   `toml:"date_format" json:"dateFormat,omitempty"`
	MonthNames []string `toml:"month_names" json:"monthNames,omitempty"`
}

type table struct {
	dateFormat string
	months     []string
}

const DefaultLang = "en"

var tables = map[string]table{
	"en": {"MM/YYYY", []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}},
	"ja": {"YYYY/MM", []string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"}},
	"zh": {"YYYY/MM", []string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"}},
	"de": {"MM.YYYY", []string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}},
	"fr": {"MM/YYYY", []string{"Janv", "Févr", "Mars", "Avr", "Mai", "Juin", "Juil", "Août", "Sept", "Oct", "Nov", "Déc"}},
	"es": {"MM/YYYY", []string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}},
	"pt": {"MM/YYYY", []string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}},
	"it": {"MM/YYYY", []string{"Gen", "Feb", "Mar", "Apr", "Mag", "Giu", "Lug", "Ago", "Set", "Ott", "Nov", "Dic"}},
	"nl": {"MM-YYYY", []string{"Jan", "Feb", "Mrt", "Apr", "Mei", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dec"}},
}

var (
	supported []language.Tag
	matcher   language.Matcher
)

func init() {
	// DefaultLang first: it is the matcher's fallback.
	supported = []language.Tag{language.MustParse(DefaultLang)}
	for _, l := range Languages() {
		if l != DefaultLang {
			supported = append(supported, language.MustParse(l))
		}
	}
	matcher = language.NewMatcher(supported)
}

// Languages lists the built-in table languages, sorted.
func Languages() []string {
	out := make([]string, 0, len(tables))
	for l := range tables {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Match resolves a BCP 47 tag (e.g. "ja-JP", "pt_BR") to a built-in table language.
// Unknown or malformed tags fall back to DefaultLang.
func Match(lang string) string {
	lang = strings.ReplaceAll(strings.TrimSpace(lang), "_", "-")
	if lang == "" {
		return DefaultLang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLang
	}
	base, _ := supported[idx].Base()
	return base.String()
}

// Layout is what the mask codec needs from a locale.
type Layout struct {
	Order model.FieldOrder
	Sep   string
}

// LayoutOf derives field order and separator from a format string. Whichever of M or Y
// appears first leads; the separator is the text between the two token runs ("/" if none).
func LayoutOf(format string) Layout {
	l := Layout{Order: model.OrderMonthYear, Sep: "/"}
	mi := strings.IndexRune(format, 'M')
	yi := strings.IndexRune(format, 'Y')
	if yi >= 0 && (mi < 0 || yi < mi) {
		l.Order = model.OrderYearMonth
	}
	lead, trail := 'M', 'Y'
	if l.Order == model.OrderYearMonth {
		lead, trail = 'Y', 'M'
	}
	start := strings.IndexRune(format, lead)
	if start < 0 {
		return l
	}
	end := start
	for end < len(format) && rune(format[end]) == lead {
		end++
	}
	next := strings.IndexRune(format[end:], trail)
	if next > 0 {
		l.Sep = format[end : end+next]
	}
	return l
}

// Context is an immutable, resolved locale.
type Context struct {
	lang       string
	dateFormat string
	months     []string
	layout     Layout
}

var _ Translator = (*Context)(nil)

// New resolves lang against the built-in tables and applies overrides. Override month
// names are only used when exactly twelve are given.
func New(lang string, o *Overrides) *Context {
	l := Match(lang)
	t := tables[l]
	c := &Context{
		lang:       l,
		dateFormat: t.dateFormat,
		months:     append([]string(nil), t.months...),
	}
	if o != nil {
		if f := strings.TrimSpace(o.DateFormat); f != "" {
			c.dateFormat = f
		}
		if len(o.MonthNames) == 12 {
			c.months = append([]string(nil), o.MonthNames...)
		}
	}
	c.layout = LayoutOf(c.dateFormat)
	return c
}

func (c *Context) Lang() string       { return c.lang }
func (c *Context) DateFormat() string { return c.dateFormat }
func (c *Context) Layout() Layout     { return c.layout }

// MonthNames returns a copy of the twelve month names, January first.
func (c *Context) MonthNames() []string {
	return append([]string(nil), c.months...)
}

// MonthName returns the name for a zero-based month, or "" when out of range.
func (c *Context) MonthName(month int) string {
	if month < 0 || month >= len(c.months) {
		return ""
	}
	return c.months[month]
}

// FromTranslator snapshots an external Translator into a Context. A translator that does not
// return twelve month names keeps the built-in names for its language.
func FromTranslator(t Translator) *Context {
	if c, ok := t.(*Context); ok {
		return c
	}
	return New(t.Lang(), &Overrides{DateFormat: t.DateFormat(), MonthNames: t.MonthNames()})
}
