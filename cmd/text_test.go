package cmd

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mj1618/a11ytree/internal/a11y"
	"github.com/mj1618/a11ytree/internal/config"
	"github.com/mj1618/a11ytree/internal/describe"
	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/platform"
	"github.com/mj1618/a11ytree/internal/uitree"
)

const (
	paragraph1 = "This is the first paragraph."
	paragraph2 = "Hello, Dreamer of dreams."
	paragraph3 = "Yet another paragraph"
)

func newSRFirstSession(t *testing.T) *platform.Session {
	t.Helper()
	s, err := platform.NewSession(config.Default(), &describe.SRFirst{}, false)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func idByTitle(t *testing.T, s *platform.Session, title string) string {
	t.Helper()
	for _, el := range model.FlattenElements(s.Elements()) {
		if el.Title == title {
			return el.ID
		}
	}
	t.Fatalf("no element titled %q", title)
	return ""
}

func documentID(t *testing.T, s *platform.Session) string {
	t.Helper()
	e, err := s.Target("@main/main")
	if err != nil {
		t.Fatal(err)
	}
	return e.String()
}

func TestTextSubcommands(t *testing.T) {
	tests := []struct {
		name string
		src  func(t *testing.T, s *platform.Session) rangeSource
		run  func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error)
		want func(t *testing.T, s *platform.Session) interface{}
	}{
		{
			name: "get document range",
			run: func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error) {
				r := mustOpenRange(t, s, src)
				res, err := textGet(r, -1)
				return res.Text, err
			},
			want: func(*testing.T, *platform.Session) interface{} { return "Main" + paragraph1 + paragraph2 + paragraph3 },
		},
		{
			name: "get with max length",
			run: func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error) {
				res, err := textGet(mustOpenRange(t, s, src), 4)
				return res.Text, err
			},
			want: func(*testing.T, *platform.Session) interface{} { return "Main" },
		},
		{
			name: "get child range",
			src:  func(*testing.T, *platform.Session) rangeSource { return rangeSource{Child: "@main/main/hello-dreamer-of-dreams"} },
			run: func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error) {
				res, err := textGet(mustOpenRange(t, s, src), -1)
				return res.Text, err
			},
			want: func(*testing.T, *platform.Session) interface{} { return paragraph2 },
		},
		{
			name: "find match",
			run: func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error) {
				res, err := textFind(mustOpenRange(t, s, src), "Dreamer", false, false)
				if err != nil || !res.Found {
					return nil, err
				}
				return res.Range.Text, nil
			},
			want: func(*testing.T, *platform.Session) interface{} { return "Dreamer" },
		},
		{
			name: "find no match",
			run: func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error) {
				res, err := textFind(mustOpenRange(t, s, src), "Nightmare", false, false)
				return res.Found, err
			},
			want: func(*testing.T, *platform.Session) interface{} { return false },
		},
		{
			name: "move one paragraph",
			run: func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error) {
				res, err := textMove(mustOpenRange(t, s, src), uitree.UnitParagraph, 1)
				return []interface{}{res.Moved, res.Range.Text}, err
			},
			want: func(*testing.T, *platform.Session) interface{} { return []interface{}{1, paragraph2} },
		},
		{
			name: "expand point to paragraph",
			src:  func(*testing.T, *platform.Session) rangeSource { return rangeSource{At: "30,65"} },
			run: func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error) {
				res, err := textExpand(mustOpenRange(t, s, src), uitree.UnitParagraph)
				return res.Text, err
			},
			want: func(*testing.T, *platform.Session) interface{} { return paragraph2 },
		},
		{
			name: "enclosing of cross-paragraph range",
			src: func(t *testing.T, s *platform.Session) rangeSource {
				return rangeSource{Range: idByTitle(t, s, paragraph1) + ":0," + idByTitle(t, s, paragraph2) + ":5"}
			},
			run: func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error) {
				res, err := textEnclosing(mustOpenRange(t, s, src))
				return res.Element, err
			},
			want: func(t *testing.T, s *platform.Session) interface{} { return documentID(t, s) },
		},
		{
			name: "rects of document range",
			run: func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error) {
				res, err := textRects(mustOpenRange(t, s, src))
				return len(res.Rects), err
			},
			want: func(*testing.T, *platform.Session) interface{} { return 4 },
		},
		{
			name: "children skip a partial first element",
			src: func(t *testing.T, s *platform.Session) rangeSource {
				return rangeSource{Range: idByTitle(t, s, paragraph1) + ":3," + idByTitle(t, s, paragraph3) + ":2"}
			},
			run: func(t *testing.T, s *platform.Session, src rangeSource) (interface{}, error) {
				res, err := textChildren(mustOpenRange(t, s, src))
				return res.Children, err
			},
			want: func(t *testing.T, s *platform.Session) interface{} {
				return []string{idByTitle(t, s, paragraph2), idByTitle(t, s, paragraph3)}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSRFirstSession(t)
			var src rangeSource
			if tt.src != nil {
				src = tt.src(t, s)
			}
			got, err := tt.run(t, s, src)
			if err != nil {
				t.Fatal(err)
			}
			if want := tt.want(t, s); !reflect.DeepEqual(got, want) {
				t.Errorf("got %#v, want %#v", got, want)
			}
		})
	}
}

func mustOpenRange(t *testing.T, s *platform.Session, src rangeSource) *a11y.TextRange {
	t.Helper()
	r, err := openRange(s, "@main/main", src)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestTextFind_UnsupportedModes(t *testing.T) {
	s := newSRFirstSession(t)
	for _, mode := range []struct{ backward, ignoreCase bool }{{true, false}, {false, true}} {
		_, err := textFind(mustOpenRange(t, s, rangeSource{}), "Dreamer", mode.backward, mode.ignoreCase)
		if err == nil || !strings.Contains(err.Error(), "not implemented") {
			t.Errorf("textFind(%+v) error = %v, want not implemented", mode, err)
		}
	}
}

func TestOpenRange_Errors(t *testing.T) {
	s := newSRFirstSession(t)
	tests := []struct {
		name     string
		provider string
		src      rangeSource
	}{
		{"pane has no text pattern", "@main", rangeSource{}},
		{"unknown ref", "@nowhere", rangeSource{}},
		{"bad range", "@main/main", rangeSource{Range: "nope"}},
		{"stale range id", "@main/main", rangeSource{Range: "00000000000000ff:0"}},
		{"child outside provider", "@main/main", rangeSource{Child: "@main/close-application"}},
		{"bad point", "@main/main", rangeSource{At: "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := openRange(s, tt.provider, tt.src); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
