package main

import (
	"reflect"
	"testing"
)

func TestRewriteMaskArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"monthpicker"},
			want: []string{"monthpicker"},
		},
		{
			name: "mask first token",
			in:   []string{"monthpicker", "04/2015"},
			want: []string{"monthpicker", "parse", "04/2015"},
		},
		{
			name: "mask after value flag",
			in:   []string{"monthpicker", "--lang", "ja", "2015/04"},
			want: []string{"monthpicker", "--lang", "ja", "parse", "2015/04"},
		},
		{
			name: "mask after value flag with numeric value",
			in:   []string{"monthpicker", "--max-year", "2020", "13/2031"},
			want: []string{"monthpicker", "--max-year", "2020", "parse", "13/2031"},
		},
		{
			name: "mask after equals flag",
			in:   []string{"monthpicker", "--min=2015-05", "01.2010"},
			want: []string{"monthpicker", "--min=2015-05", "parse", "01.2010"},
		},
		{
			name: "mask after bool flag",
			in:   []string{"monthpicker", "--pretty", "__/2015"},
			want: []string{"monthpicker", "--pretty", "parse", "__/2015"},
		},
		{
			name: "mask after double dash",
			in:   []string{"monthpicker", "--format", "text", "--", "04-2015"},
			want: []string{"monthpicker", "--format", "text", "--", "parse", "04-2015"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"monthpicker", "parse", "04/2015"},
			want: []string{"monthpicker", "parse", "04/2015"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"monthpicker", "wat"},
			want: []string{"monthpicker", "wat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteMaskArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteMaskArgs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsMaskText(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"04/2015", "2015/04", "__/____", "04.2015", "1_/2015"} {
		if !isMaskText(s) {
			t.Fatalf("expected %q to look like a mask", s)
		}
	}
	for _, s := range []string{"", "nav", "04", "year:2020", "docs"} {
		if isMaskText(s) {
			t.Fatalf("expected %q not to look like a mask", s)
		}
	}
}
