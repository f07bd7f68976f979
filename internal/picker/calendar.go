package picker

import (
	"time"

	"monthpicker/internal/model"
)

// PageSize is the number of years in one year-grid page.
const PageSize = 12

// Page is a window of PageSize consecutive years starting at Start.
type Page struct {
	Start int `json:"start"`
}

func (p Page) End() int { return p.Start + PageSize - 1 }

func (p Page) Years() []int {
	out := make([]int, PageSize)
	for i := range out {
		out[i] = p.Start + i
	}
	return out
}

// Contains reports whether year is on the page.
func (p Page) Contains(year int) bool { return year >= p.Start && year <= p.End() }

// Change is the value reported after an accepted selection.
type Change = model.DateValue

// CalendarOptions seed a Calendar. CurrentYear zero means the clock's UTC year.
type CalendarOptions struct {
	Year        *int
	Month       *int
	StartYear   *int
	ReadOnly    bool
	CurrentYear int
}

// Calendar is the year-grid / month-grid state machine. It is a value: every operation
// returns the next state and leaves the receiver untouched.
type Calendar struct {
	View          model.ViewMode `json:"view"`
	SelectedYear  *int           `json:"selectedYear,omitempty"`
	SelectedMonth *int           `json:"selectedMonth,omitempty"`
	Page          Page           `json:"page"`
	ReadOnly      bool           `json:"readOnly,omitempty"`
}

// NewCalendar opens on the month grid when a year is known, else on the year grid. The first
// page starts at the start-year hint, else the year, else six years before the current year,
// and never below the bound's minimum year.
func NewCalendar(o CalendarOptions, b model.DateBound) Calendar {
	c := Calendar{
		View:     model.ViewYears,
		ReadOnly: o.ReadOnly,
	}
	if o.Year != nil {
		c.View = model.ViewMonths
		c.SelectedYear = model.Int(*o.Year)
	}
	if o.Month != nil {
		c.SelectedMonth = model.Int(*o.Month)
	}

	current := o.CurrentYear
	if current == 0 {
		current = time.Now().UTC().Year()
	}
	start := current - 6
	switch {
	case o.StartYear != nil:
		start = *o.StartYear
	case o.Year != nil:
		start = *o.Year
	}
	c.Page = Page{Start: max(start, b.Min.Year)}
	return c
}

// WithValue re-syncs the selection after the caller's value changed, returning to the view
// NewCalendar would pick for it. A known year also re-seeds the page to start at that year, no
// lower than the bound's minimum year; without one the page is kept.
func (c Calendar) WithValue(v model.DateValue, b model.DateBound) Calendar {
	c.SelectedYear, c.SelectedMonth = nil, nil
	c.View = model.ViewYears
	if v.Year != nil {
		c.SelectedYear = model.Int(*v.Year)
		c.View = model.ViewMonths
		c.Page = Page{Start: max(*v.Year, b.Min.Year)}
	}
	if v.Month != nil {
		c.SelectedMonth = model.Int(*v.Month)
	}
	return c
}

func (c Calendar) change() Change {
	var ch Change
	if c.SelectedYear != nil {
		ch.Year = model.Int(*c.SelectedYear)
	}
	if c.SelectedMonth != nil {
		ch.Month = model.Int(*c.SelectedMonth)
	}
	return ch
}

// SelectYear selects a year no lower than the bound's minimum year and switches to the month
// grid. Upper-bound years are kept out by the renderer, which leaves them unselectable.
func (c Calendar) SelectYear(candidate int, b model.DateBound) (Calendar, Change, bool) {
	if c.ReadOnly {
		return c, Change{}, false
	}
	c.SelectedYear = model.Int(max(candidate, b.Min.Year))
	c.View = model.ViewMonths
	return c, c.change(), true
}

// SelectMonth selects a month, restricted by the bound edges the selected year sits on. The max
// edge is applied before the min edge, so a single-year bound yields a month inside both.
func (c Calendar) SelectMonth(candidate int, b model.DateBound) (Calendar, Change, bool) {
	if c.ReadOnly {
		return c, Change{}, false
	}
	month := candidate
	if c.SelectedYear != nil {
		if *c.SelectedYear == b.Max.Year {
			month = min(month, b.Max.Month)
		}
		if *c.SelectedYear == b.Min.Year {
			month = max(month, b.Min.Month)
		}
	}
	c.SelectedMonth = model.Int(month)
	return c, c.change(), true
}

// PagePrevious moves one page back. It does not clamp at the lower bound; cells below it are
// simply not selectable.
func (c Calendar) PagePrevious(b model.DateBound) (Calendar, bool) {
	if c.ReadOnly {
		return c, false
	}
	c.Page = Page{Start: c.Page.Start - PageSize}
	c.View = model.ViewYears
	return c, true
}

// PageNext moves one page forward, but never so far that the bound's maximum year would fall
// off the page.
func (c Calendar) PageNext(b model.DateBound) (Calendar, bool) {
	if c.ReadOnly {
		return c, false
	}
	c.Page = Page{Start: min(c.Page.End()+1, b.Max.Year-(PageSize-1))}
	c.View = model.ViewYears
	return c, true
}

// RequestYearView shows the year grid. It is a view change only and works when read-only.
func (c Calendar) RequestYearView() Calendar {
	c.View = model.ViewYears
	return c
}

// YearSelectable reports whether a year cell should accept clicks.
func YearSelectable(year int, b model.DateBound) bool {
	return year >= b.Min.Year && year <= b.Max.Year
}
