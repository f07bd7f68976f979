package picker

import (
	"strconv"
	"strings"
	"time"

	"monthpicker/internal/locale"
	"monthpicker/internal/model"
)

// Placeholder stands in for each digit of an absent field.
const Placeholder = '_'

const (
	monthWidth = 2
	yearWidth  = 4
)

// ToMask renders v in layout order: the month as two digits (01-12), the year as four.
// Absent fields are filled with Placeholder.
func ToMask(v model.DateValue, l locale.Layout) string {
	month := strings.Repeat(string(Placeholder), monthWidth)
	if v.Month != nil {
		month = fmt2(*v.Month + 1)
	}
	year := strings.Repeat(string(Placeholder), yearWidth)
	if v.Year != nil {
		year = fmtYear(*v.Year)
	}
	if l.Order == model.OrderYearMonth {
		return year + l.Sep + month
	}
	return month + l.Sep + year
}

// FromMask clamps a candidate into b. The year is clamped first and decides which edge
// restricts the month, so a combined month+year change can never land past a boundary.
// An absent month starts at January; an absent year starts at the current year. Field order
// plays no part in clamping, so unlike ToMask it takes no layout.
func FromMask(v model.DateValue, b model.DateBound) model.YearMonth {
	year := time.Now().UTC().Year()
	if v.Year != nil {
		year = *v.Year
	}
	month := 0
	if v.Month != nil {
		month = *v.Month
	}

	year = clamp(year, b.Min.Year, b.Max.Year)
	month = clamp(month, 0, 11)
	if year == b.Max.Year && month > b.Max.Month {
		month = b.Max.Month
	}
	if year == b.Min.Year && month < b.Min.Month {
		month = b.Min.Month
	}
	return model.YearMonth{Month: month, Year: year}
}

// ParseMask reads text produced by ToMask (or typed into the same template) back into a
// DateValue. A field made only of placeholders is absent. The month is returned zero-based
// and unclamped ("13" parses as 12); FromMask does the clamping.
func ParseMask(text string, l locale.Layout) (model.DateValue, error) {
	want := monthWidth + yearWidth + len(l.Sep)
	if text == "" {
		return model.DateValue{}, nil
	}
	if len(text) != want {
		return model.DateValue{}, &MaskError{Text: text, Err: ErrMaskLength}
	}

	var monthText, yearText, sep string
	if l.Order == model.OrderYearMonth {
		yearText = text[:yearWidth]
		sep = text[yearWidth : yearWidth+len(l.Sep)]
		monthText = text[yearWidth+len(l.Sep):]
	} else {
		monthText = text[:monthWidth]
		sep = text[monthWidth : monthWidth+len(l.Sep)]
		yearText = text[monthWidth+len(l.Sep):]
	}
	if sep != l.Sep {
		return model.DateValue{}, &MaskError{Text: text, Err: ErrMaskDigits}
	}

	var v model.DateValue
	month, ok, err := parseField(monthText)
	if err != nil {
		return model.DateValue{}, &MaskError{Text: text, Err: err}
	}
	if ok {
		v.Month = model.Int(month - 1)
	}
	year, ok, err := parseField(yearText)
	if err != nil {
		return model.DateValue{}, &MaskError{Text: text, Err: err}
	}
	if ok {
		v.Year = model.Int(year)
	}
	return v, nil
}

func parseField(s string) (n int, ok bool, err error) {
	placeholders := 0
	for _, r := range s {
		switch {
		case r == Placeholder || r == ' ':
			placeholders++
		case r < '0' || r > '9':
			return 0, false, ErrMaskDigits
		}
	}
	if placeholders == len(s) {
		return 0, false, nil
	}
	if placeholders > 0 {
		return 0, false, ErrMaskIncomplete
	}
	n, err = strconv.Atoi(s)
	if err != nil {
		return 0, false, ErrMaskDigits
	}
	return n, true, nil
}

// InputTemplate turns a locale format ("MM/YYYY") into the digit-slot template handed to a
// masked input widget ("99/9999").
func InputTemplate(format string) string {
	return strings.Map(func(r rune) rune {
		if r == 'M' || r == 'Y' {
			return '9'
		}
		return r
	}, format)
}

func fmt2(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 99 {
		n = 99
	}
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func fmtYear(y int) string {
	y = clamp(y, model.MinYear, model.MaxYear)
	s := strconv.Itoa(y)
	for len(s) < yearWidth {
		s = "0" + s
	}
	return s
}
