package format

import (
	"bytes"
	"strings"
	"testing"
)

type result struct {
	Masked       string `json:"masked"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	SelectedYear *int   `json:"selectedYear"`
}

func (r result) Text() string { return r.Masked }

func TestWrite_Formats(t *testing.T) {
	t.Parallel()

	r := result{Masked: "04/2015", Year: 2015, Month: 3}
	tests := []struct {
		format string
		want   string
	}{
		{"json", `{"masked":"04/2015","year":2015,"month":3,"selectedYear":null}` + "\n"},
		{"edn", `{:masked "04/2015" :month 3 :selected-year nil :year 2015}` + "\n"},
		{"text", "04/2015\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Write(&buf, r, tt.format, false); err != nil {
			t.Fatalf("Write(%s): %v", tt.format, err)
		}
		if buf.String() != tt.want {
			t.Fatalf("Write(%s):\n got: %q\nwant: %q", tt.format, buf.String(), tt.want)
		}
	}
}

func TestWrite_TextFallsBackToJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"years": []int{2015, 2016}}, "text", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != `{"years":[2015,2016]}`+"\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := map[string]any{"page": map[string]any{"start": 2020}, "years": []int{}}
	if err := WriteEDN(&buf, v, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := strings.Join([]string{
		"{",
		"  :page {",
		"    :start 2020",
		"  }",
		"  :years []",
		"}",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected pretty EDN:\n%s", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, 1, "yaml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
