package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mj1618/a11ytree/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTree Format = "tree"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatJSON, FormatTree:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format: %s (want yaml, json or tree)", s)
}

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// TreeResult is the output of the `tree` command.
type TreeResult struct {
	Scene      string          `yaml:"scene"             json:"scene"`
	Generation uint64          `yaml:"generation"        json:"generation"`
	Focused    string          `yaml:"focused,omitempty" json:"focused,omitempty"`
	Elements   []model.Element `yaml:"elements"          json:"elements"`
}

// TreeFlatResult is the output of the `tree` command when --flat is used.
type TreeFlatResult struct {
	Scene      string              `yaml:"scene"             json:"scene"`
	Generation uint64              `yaml:"generation"        json:"generation"`
	Focused    string              `yaml:"focused,omitempty" json:"focused,omitempty"`
	Elements   []model.FlatElement `yaml:"elements"          json:"elements"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	return Render(os.Stdout, OutputFormat, v)
}

// Render writes v to w in format f. The tree format applies to tree results
// only; other values fall back to YAML.
func Render(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		return encodeJSON(w, v, PrettyOutput)
	case FormatYAML:
		return EncodeYAML(w, v)
	case FormatTree:
		switch r := v.(type) {
		case TreeResult:
			return WriteTree(w, r.Elements, !IsOutputPiped())
		case *TreeResult:
			return WriteTree(w, r.Elements, !IsOutputPiped())
		case TreeFlatResult:
			return WriteFlat(w, r.Elements)
		}
		return EncodeYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", f)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	return encodeJSON(os.Stdout, v, false)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	return encodeJSON(os.Stdout, v, true)
}

func encodeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
