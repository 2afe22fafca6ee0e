package platform

import (
	"testing"

	"github.com/mj1618/a11ytree/internal/uitree"
)

func TestParseBBox_Valid(t *testing.T) {
	for _, s := range []string{"10,20,300,400", "10, 20, 300, 400"} {
		r, err := ParseBBox(s)
		if err != nil {
			t.Fatal(err)
		}
		if r != uitree.XYWH(10, 20, 300, 400) {
			t.Errorf("ParseBBox(%q) = %+v", s, r)
		}
	}
}

func TestParseBBox_Invalid(t *testing.T) {
	tests := []string{
		"",
		"10,20,300",
		"10,20,300,400,500",
		"a,b,c,d",
		"10,20,abc,400",
		"10,20,-1,400",
	}
	for _, s := range tests {
		if _, err := ParseBBox(s); err == nil {
			t.Errorf("ParseBBox(%q) should fail", s)
		}
	}
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("130, 95")
	if err != nil {
		t.Fatal(err)
	}
	if p != (uitree.Point{X: 130, Y: 95}) {
		t.Errorf("got %+v", p)
	}
	for _, s := range []string{"", "1", "1,2,3", "x,1"} {
		if _, err := ParsePoint(s); err == nil {
			t.Errorf("ParsePoint(%q) should fail", s)
		}
	}
}

func TestParseLabelMode(t *testing.T) {
	tests := []struct {
		input string
		want  LabelMode
	}{
		{"names", LabelNames},
		{"", LabelNames},
		{"IDs", LabelIDs},
		{"id", LabelIDs},
	}
	for _, tt := range tests {
		got, err := ParseLabelMode(tt.input)
		if err != nil {
			t.Errorf("ParseLabelMode(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseLabelMode(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
	if _, err := ParseLabelMode("coords"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestParseTextRange(t *testing.T) {
	r, err := ParseTextRange("00000000000000a1:2, 00000000000000b2:5")
	if err != nil {
		t.Fatal(err)
	}
	want := uitree.TextRange{
		Start: uitree.TextPoint{ID: 0xa1, Offset: 2},
		End:   uitree.TextPoint{ID: 0xb2, Offset: 5},
	}
	if r != want {
		t.Errorf("ParseTextRange = %+v, want %+v", r, want)
	}

	r, err = ParseTextRange("a1:3")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Degenerate() || r.Start.Offset != 3 {
		t.Errorf("single point should be degenerate at 3, got %+v", r)
	}
}

func TestParseTextRange_Invalid(t *testing.T) {
	for _, s := range []string{"", "a1", "a1:x", "zz:1", "a1:1,b2"} {
		if _, err := ParseTextRange(s); err == nil {
			t.Errorf("ParseTextRange(%q) should fail", s)
		}
	}
}
