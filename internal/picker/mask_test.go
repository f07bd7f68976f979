package picker

import (
	"errors"
	"testing"

	"monthpicker/internal/locale"
	"monthpicker/internal/model"
)

var (
	layoutMY = locale.Layout{Order: model.OrderMonthYear, Sep: "/"}
	layoutYM = locale.Layout{Order: model.OrderYearMonth, Sep: "/"}
)

func TestToMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      model.DateValue
		layout locale.Layout
		want   string
	}{
		{"complete month first", model.Value(3, 2015), layoutMY, "04/2015"},
		{"complete year first", model.Value(3, 2015), layoutYM, "2015/04"},
		{"december", model.Value(11, 2030), layoutMY, "12/2030"},
		{"year only", model.DateValue{Year: model.Int(2015)}, layoutMY, "__/2015"},
		{"month only", model.DateValue{Month: model.Int(0)}, layoutYM, "____/01"},
		{"empty", model.DateValue{}, layoutMY, "__/____"},
		{"short year padded", model.Value(0, 987), layoutMY, "01/0987"},
		{"dot separator", model.Value(8, 2024), locale.Layout{Order: model.OrderMonthYear, Sep: "."}, "09.2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToMask(tt.v, tt.layout); got != tt.want {
				t.Fatalf("ToMask=%q want %q", got, tt.want)
			}
		})
	}
}

func TestFromMask_Clamps(t *testing.T) {
	t.Parallel()

	b := model.DateBound{Min: model.YearMonth{Month: 3, Year: 2015}, Max: model.YearMonth{Month: 7, Year: 2030}}
	tests := []struct {
		name string
		v    model.DateValue
		want model.YearMonth
	}{
		{"inside", model.Value(5, 2020), model.YearMonth{Month: 5, Year: 2020}},
		{"year below", model.Value(5, 2010), model.YearMonth{Month: 5, Year: 2015}},
		{"year below month below min month", model.Value(0, 2010), model.YearMonth{Month: 3, Year: 2015}},
		{"year above", model.Value(2, 2040), model.YearMonth{Month: 2, Year: 2030}},
		{"year above month above max month", model.Value(11, 2040), model.YearMonth{Month: 7, Year: 2030}},
		{"month over 11", model.Value(14, 2020), model.YearMonth{Month: 11, Year: 2020}},
		{"month negative", model.Value(-1, 2020), model.YearMonth{Month: 0, Year: 2020}},
		{"absent month on min year", model.DateValue{Year: model.Int(2015)}, model.YearMonth{Month: 3, Year: 2015}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FromMask(tt.v, b); got != tt.want {
				t.Fatalf("FromMask=%+v want %+v", got, tt.want)
			}
		})
	}
}

func TestFromMask_IdempotentAndContained(t *testing.T) {
	t.Parallel()

	bounds := []model.DateBound{
		Resolve(ym(0, 2015), ym(11, 2030), nil),
		Resolve(ym(5, 2015), ym(2, 2016), nil),
		Resolve(ym(4, 2020), ym(4, 2020), nil),
		Resolve(nil, nil, model.Int(2001)),
	}
	for _, b := range bounds {
		for year := 1990; year <= 2040; year += 3 {
			for month := -2; month <= 13; month++ {
				first := FromMask(model.Value(month, year), b)
				if !b.Contains(first) {
					t.Fatalf("bound %+v: FromMask(%d,%d)=%+v escapes the bound", b, month, year, first)
				}
				again := FromMask(model.ValueOf(first), b)
				if again != first {
					t.Fatalf("bound %+v: FromMask not idempotent: %+v then %+v", b, first, again)
				}
			}
		}
	}
}

func TestParseMask_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, l := range []locale.Layout{layoutMY, layoutYM, {Order: model.OrderMonthYear, Sep: " - "}} {
		for _, year := range []int{0, 1999, 2015, 9999} {
			for month := 0; month < 12; month++ {
				text := ToMask(model.Value(month, year), l)
				v, err := ParseMask(text, l)
				if err != nil {
					t.Fatalf("ParseMask(%q): %v", text, err)
				}
				if !v.Equal(model.Value(month, year)) {
					t.Fatalf("round trip %q: got month=%v year=%v", text, *v.Month, *v.Year)
				}
			}
		}
	}
}

func TestParseMask_Partial(t *testing.T) {
	t.Parallel()

	v, err := ParseMask("__/2015", layoutMY)
	if err != nil {
		t.Fatalf("ParseMask: %v", err)
	}
	if v.HasMonth() || !v.HasYear() || *v.Year != 2015 {
		t.Fatalf("expected year-only value, got %+v", v)
	}

	v, err = ParseMask("", layoutMY)
	if err != nil || v.HasMonth() || v.HasYear() {
		t.Fatalf("expected empty value for empty text, got %+v, %v", v, err)
	}

	v, err = ParseMask("13/2015", layoutMY)
	if err != nil || *v.Month != 12 {
		t.Fatalf("expected unclamped month 12, got %+v, %v", v, err)
	}
}

func TestParseMask_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want error
	}{
		{"04/201", ErrMaskLength},
		{"4/2015", ErrMaskLength},
		{"0_/2015", ErrMaskIncomplete},
		{"04/20_5", ErrMaskIncomplete},
		{"ab/2015", ErrMaskDigits},
		{"04-2015", ErrMaskDigits},
	}
	for _, tt := range tests {
		_, err := ParseMask(tt.text, layoutMY)
		if err == nil {
			t.Fatalf("expected error for %q", tt.text)
		}
		var me *MaskError
		if !errors.As(err, &me) || me.Text != tt.text {
			t.Fatalf("expected *MaskError for %q, got %T %v", tt.text, err, err)
		}
		if !errors.Is(err, tt.want) {
			t.Fatalf("%q: expected %v, got %v", tt.text, tt.want, err)
		}
	}
}

func TestInputTemplate(t *testing.T) {
	t.Parallel()

	if got := InputTemplate("MM/YYYY"); got != "99/9999" {
		t.Fatalf("InputTemplate=%q", got)
	}
	if got := InputTemplate("YYYY.MM"); got != "9999.99" {
		t.Fatalf("InputTemplate=%q", got)
	}
}
