package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mj1618/a11ytree/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleResult() TreeResult {
	return TreeResult{
		Scene:      "srfirst",
		Generation: 3,
		Focused:    "2",
		Elements: []model.Element{
			{
				ID: "1", Role: "pane", Title: "Main", Bounds: [4]int{0, 0, 1200, 140},
				Children: []model.Element{
					{ID: "2", Role: "btn", Title: "OK", Focused: true, Actions: []string{"invoke"}, Ref: "main/ok"},
					{ID: "3", Role: "txt", Title: "Hello"},
				},
			},
		},
	}
}

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	out := captureStdout(t, func() error { return PrintYAML(sampleResult()) })

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}
	var decoded TreeResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Scene != "srfirst" || len(decoded.Elements) != 1 || len(decoded.Elements[0].Children) != 2 {
		t.Errorf("unexpected decoded result %+v", decoded)
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	out := captureStdout(t, func() error { return PrintJSON(sampleResult()) })

	if strings.Count(out, "\n") > 1 {
		t.Errorf("compact output should be single line, got:\n%s", out)
	}
	var decoded TreeResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Generation != 3 {
		t.Errorf("generation: got %d, want 3", decoded.Generation)
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	out := captureStdout(t, func() error { return PrintPrettyJSON(sampleResult()) })
	if strings.Count(out, "\n") <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", out)
	}
}

func TestTreeResult_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(TreeResult{Scene: "x", Elements: []model.Element{}})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["focused"]; ok {
		t.Error("empty focused should be omitted")
	}
	if _, ok := m["generation"]; !ok {
		t.Error("generation should always be present")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json", "tree"} {
		if f, err := ParseFormat(s); err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestRender_TreeFallsBackToYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, FormatTree, map[string]int{"count": 1}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "count: 1\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Format("xml"), 1); err == nil {
		t.Error("expected error")
	}
}
