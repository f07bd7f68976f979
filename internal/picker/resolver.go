// Package picker is the month/year picker engine: bound resolution, mask conversion and the
// year/month calendar state machine. Everything here is a pure function of its inputs;
// callers own the mutable UI state and re-invoke the engine on each event.
package picker

import "monthpicker/internal/model"

// Resolve turns optional caller bounds into a fully populated DateBound. Missing edges become
// the year sentinels so clamping never special-cases "no bound". maxYear only applies when
// maxDate is absent. An inverted range collapses to the single point minDate.
func Resolve(minDate, maxDate *model.YearMonth, maxYear *int) model.DateBound {
	b := model.DateBound{
		Min: model.YearMonth{Month: 0, Year: model.MinYear},
		Max: model.YearMonth{Month: 11, Year: model.MaxYear},
	}
	if minDate != nil {
		b.Min = normalizeEdge(*minDate)
	}
	switch {
	case maxDate != nil:
		b.Max = normalizeEdge(*maxDate)
	case maxYear != nil:
		b.Max = normalizeEdge(model.YearMonth{Month: 11, Year: *maxYear})
	}
	if b.Max.Before(b.Min) {
		b.Max = b.Min
	}
	return b
}

func normalizeEdge(ym model.YearMonth) model.YearMonth {
	return model.YearMonth{
		Month: clamp(ym.Month, 0, 11),
		Year:  clamp(ym.Year, model.MinYear, model.MaxYear),
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
