package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Year sentinels used when a bound edge is not configured. They are the extremes a
// four-digit year mask can display.
const (
	MinYear = 0
	MaxYear = 9999
)

// YearMonth is a calendar month. Month is zero-based (0 = January).
type YearMonth struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Compare orders by year, then month.
func (ym YearMonth) Compare(other YearMonth) int {
	switch {
	case ym.Year < other.Year:
		return -1
	case ym.Year > other.Year:
		return 1
	case ym.Month < other.Month:
		return -1
	case ym.Month > other.Month:
		return 1
	default:
		return 0
	}
}

func (ym YearMonth) Before(other YearMonth) bool { return ym.Compare(other) < 0 }
func (ym YearMonth) After(other YearMonth) bool  { return ym.Compare(other) > 0 }

// String renders YYYY-MM with a human (1-based) month.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month+1)
}

// ParseYearMonth parses YYYY-MM (human month 01-12).
func ParseYearMonth(s string) (YearMonth, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return YearMonth{}, fmt.Errorf("invalid year-month %q (expected YYYY-MM)", s)
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid year in %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	if m < 1 || m > 12 {
		return YearMonth{}, fmt.Errorf("invalid month in %q: %d", s, m)
	}
	return YearMonth{Month: m - 1, Year: y}, nil
}

// DateValue is a possibly incomplete selection. Either field may be nil.
type DateValue struct {
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

func (v DateValue) HasMonth() bool { return v.Month != nil }
func (v DateValue) HasYear() bool  { return v.Year != nil }
func (v DateValue) Complete() bool { return v.Month != nil && v.Year != nil }

// Equal compares the pointed-to values.
func (v DateValue) Equal(other DateValue) bool {
	return intPtrEqual(v.Month, other.Month) && intPtrEqual(v.Year, other.Year)
}

// Value builds a complete DateValue.
func Value(month, year int) DateValue {
	return DateValue{Month: Int(month), Year: Int(year)}
}

// ValueOf converts a YearMonth into a complete DateValue.
func ValueOf(ym YearMonth) DateValue { return Value(ym.Month, ym.Year) }

// Int returns a pointer to a copy of n.
func Int(n int) *int { return &n }

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// DateBound is the inclusive range a selection must stay within.
type DateBound struct {
	Min YearMonth `json:"min"`
	Max YearMonth `json:"max"`
}

// Contains reports whether ym lies within the bound.
func (b DateBound) Contains(ym YearMonth) bool {
	return !ym.Before(b.Min) && !ym.After(b.Max)
}

// FieldOrder is the locale order of the month and year fields in a mask.
type FieldOrder int

const (
	OrderMonthYear FieldOrder = iota
	OrderYearMonth
)

func (o FieldOrder) String() string {
	if o == OrderYearMonth {
		return "year-month"
	}
	return "month-year"
}

// ViewMode selects which grid the calendar shows.
type ViewMode int

const (
	ViewYears ViewMode = iota
	ViewMonths
)

func (v ViewMode) String() string {
	if v == ViewMonths {
		return "months"
	}
	return "years"
}

func (v ViewMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *ViewMode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "years":
		*v = ViewYears
	case "months":
		*v = ViewMonths
	default:
		return fmt.Errorf("unknown view %q", b)
	}
	return nil
}

// Mode is the interaction mode of a picker.
type Mode string

const (
	ModeNormal       Mode = "normal"
	ModeReadOnly     Mode = "readOnly"
	ModeCalendarOnly Mode = "calendarOnly"
)

// ParseMode accepts the documented mode names, case-insensitively. Empty means normal.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return ModeNormal, nil
	case "readonly", "read-only":
		return ModeReadOnly, nil
	case "calendaronly", "calendar-only":
		return ModeCalendarOnly, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected normal|readOnly|calendarOnly)", s)
	}
}
