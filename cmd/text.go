package cmd

import (
	"fmt"
	"strconv"

	"github.com/mj1618/a11ytree/internal/a11y"
	"github.com/mj1618/a11ytree/internal/output"
	"github.com/mj1618/a11ytree/internal/platform"
	"github.com/mj1618/a11ytree/internal/uitree"
	"github.com/spf13/cobra"
)

// TextRangeResult is a range with the text it covers.
type TextRangeResult struct {
	Span uitree.TextRange `yaml:"span" json:"span"`
	Text string           `yaml:"text" json:"text"`
}

// TextFindResult is the output of text find.
type TextFindResult struct {
	Found bool             `yaml:"found"           json:"found"`
	Range *TextRangeResult `yaml:"range,omitempty" json:"range,omitempty"`
}

// TextMoveResult is the output of text move.
type TextMoveResult struct {
	Moved int             `yaml:"moved" json:"moved"`
	Range TextRangeResult `yaml:"range" json:"range"`
}

// ElementResult names a single element.
type ElementResult struct {
	Element string `yaml:"element" json:"element"`
}

// RectsResult is the output of text rects.
type RectsResult struct {
	Rects []RectResult `yaml:"rects" json:"rects"`
}

// ChildrenResult is the output of text children.
type ChildrenResult struct {
	Children []string `yaml:"children" json:"children"`
}

// rangeSource selects the starting range of a text subcommand. Empty means
// the provider's document range.
type rangeSource struct {
	Range string
	Child string
	At    string
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Query text ranges of a document or text element",
	Long: `Text range operations through an element's text pattern.

Each subcommand takes the provider element (a document or text element) and
works on its document range unless a starting range is given:
  --range <id>:<off>,<id>:<off>   an explicit range (one point makes it degenerate)
  --child <element>               the range of a descendant of the provider
  --at x,y                        a degenerate range at a screen point

Offsets count characters (runes) inside an element's name.`,
}

var textGetCmd = &cobra.Command{
	Use:   "get <element>",
	Short: "Print the text of a range",
	Args:  cobra.ExactArgs(1),
	RunE:  runTextGet,
}

var textFindCmd = &cobra.Command{
	Use:   "find <element> <text>",
	Short: "Find text inside a range",
	Long: `Find the first case-sensitive match inside a range. A match must lie inside
a single element. Backward and case-insensitive searches are not supported.`,
	Args: cobra.ExactArgs(2),
	RunE: runTextFind,
}

var textMoveCmd = &cobra.Command{
	Use:   "move <element> <unit> [count]",
	Short: "Move a range by whole text units",
	Long: `Collapse the range onto its unit and move it count units (default 1, negative
moves backward). Units: paragraph, page and document. Character, format, word
and line are not supported.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runTextMove,
}

var textExpandCmd = &cobra.Command{
	Use:   "expand <element> <unit>",
	Short: "Grow a range to the enclosing text unit",
	Args:  cobra.ExactArgs(2),
	RunE:  runTextExpand,
}

var textEnclosingCmd = &cobra.Command{
	Use:   "enclosing <element>",
	Short: "Print the element that encloses a range",
	Args:  cobra.ExactArgs(1),
	RunE:  runTextEnclosing,
}

var textRectsCmd = &cobra.Command{
	Use:   "rects <element>",
	Short: "Print the screen rectangles covered by a range",
	Args:  cobra.ExactArgs(1),
	RunE:  runTextRects,
}

var textChildrenCmd = &cobra.Command{
	Use:   "children <element>",
	Short: "List the elements a range covers",
	Args:  cobra.ExactArgs(1),
	RunE:  runTextChildren,
}

func init() {
	rootCmd.AddCommand(textCmd)
	textCmd.PersistentFlags().String("range", "", "Start from an explicit range: <id>:<off>,<id>:<off>")
	textCmd.PersistentFlags().String("child", "", "Start from the range of a descendant element")
	textCmd.PersistentFlags().String("at", "", "Start from a degenerate range at a screen point (x,y)")

	textGetCmd.Flags().Int("max", -1, "Maximum characters to return (-1 = all)")
	textFindCmd.Flags().Bool("backward", false, "Search backward (unsupported: fails with not implemented)")
	textFindCmd.Flags().Bool("ignore-case", false, "Match case-insensitively (unsupported: fails with not implemented)")

	textCmd.AddCommand(textGetCmd, textFindCmd, textMoveCmd, textExpandCmd,
		textEnclosingCmd, textRectsCmd, textChildrenCmd)
}

func runTextGet(cmd *cobra.Command, args []string) error {
	r, err := openRangeFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	maxLen, _ := cmd.Flags().GetInt("max")
	res, err := textGet(r, maxLen)
	if err != nil {
		return err
	}
	return output.Print(res)
}

func runTextFind(cmd *cobra.Command, args []string) error {
	r, err := openRangeFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	backward, _ := cmd.Flags().GetBool("backward")
	ignoreCase, _ := cmd.Flags().GetBool("ignore-case")
	res, err := textFind(r, args[1], backward, ignoreCase)
	if err != nil {
		return err
	}
	return output.Print(res)
}

func runTextMove(cmd *cobra.Command, args []string) error {
	unit, err := uitree.ParseTextUnit(args[1])
	if err != nil {
		return err
	}
	count := 1
	if len(args) == 3 {
		if count, err = strconv.Atoi(args[2]); err != nil {
			return fmt.Errorf("invalid count %q", args[2])
		}
	}
	r, err := openRangeFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := textMove(r, unit, count)
	if err != nil {
		return err
	}
	return output.Print(res)
}

func runTextExpand(cmd *cobra.Command, args []string) error {
	unit, err := uitree.ParseTextUnit(args[1])
	if err != nil {
		return err
	}
	r, err := openRangeFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := textExpand(r, unit)
	if err != nil {
		return err
	}
	return output.Print(res)
}

func runTextEnclosing(cmd *cobra.Command, args []string) error {
	r, err := openRangeFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := textEnclosing(r)
	if err != nil {
		return err
	}
	return output.Print(res)
}

func runTextRects(cmd *cobra.Command, args []string) error {
	r, err := openRangeFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := textRects(r)
	if err != nil {
		return err
	}
	return output.Print(res)
}

func runTextChildren(cmd *cobra.Command, args []string) error {
	r, err := openRangeFromFlags(cmd, args[0])
	if err != nil {
		return err
	}
	res, err := textChildren(r)
	if err != nil {
		return err
	}
	return output.Print(res)
}

func textGet(r *a11y.TextRange, maxLen int) (TextRangeResult, error) {
	text, err := r.Text(maxLen)
	if err != nil {
		return TextRangeResult{}, err
	}
	return TextRangeResult{Span: r.Range(), Text: text}, nil
}

func textFind(r *a11y.TextRange, needle string, backward, ignoreCase bool) (TextFindResult, error) {
	found, err := r.FindText(needle, backward, ignoreCase)
	if err != nil || found == nil {
		return TextFindResult{}, err
	}
	res, err := textGet(found, -1)
	if err != nil {
		return TextFindResult{}, err
	}
	return TextFindResult{Found: true, Range: &res}, nil
}

func textMove(r *a11y.TextRange, unit uitree.TextUnit, count int) (TextMoveResult, error) {
	moved, err := r.Move(unit, count)
	if err != nil {
		return TextMoveResult{}, err
	}
	res, err := textGet(r, -1)
	if err != nil {
		return TextMoveResult{}, err
	}
	return TextMoveResult{Moved: moved, Range: res}, nil
}

func textExpand(r *a11y.TextRange, unit uitree.TextUnit) (TextRangeResult, error) {
	if err := r.ExpandToEnclosingUnit(unit); err != nil {
		return TextRangeResult{}, err
	}
	return textGet(r, -1)
}

func textEnclosing(r *a11y.TextRange) (ElementResult, error) {
	e, err := r.EnclosingElement()
	if err != nil {
		return ElementResult{}, err
	}
	return ElementResult{Element: e.String()}, nil
}

func textRects(r *a11y.TextRange) (RectsResult, error) {
	rects, err := r.BoundingRectangles()
	if err != nil {
		return RectsResult{}, err
	}
	out := make([]RectResult, len(rects))
	for i, rc := range rects {
		out[i] = toRectResult(rc)
	}
	return RectsResult{Rects: out}, nil
}

func textChildren(r *a11y.TextRange) (ChildrenResult, error) {
	children, err := r.Children()
	if err != nil {
		return ChildrenResult{}, err
	}
	ids := make([]string, len(children))
	for i, c := range children {
		ids[i] = c.String()
	}
	return ChildrenResult{Children: ids}, nil
}

// openRangeFromFlags describes the scene and opens the starting range named
// by the --range, --child and --at flags.
func openRangeFromFlags(cmd *cobra.Command, provider string) (*a11y.TextRange, error) {
	session, err := openSession(false)
	if err != nil {
		return nil, err
	}
	var src rangeSource
	src.Range, _ = cmd.Flags().GetString("range")
	src.Child, _ = cmd.Flags().GetString("child")
	src.At, _ = cmd.Flags().GetString("at")
	return openRange(session, provider, src)
}

// openRange builds the starting range through the provider element's text
// pattern.
func openRange(session *platform.Session, provider string, src rangeSource) (*a11y.TextRange, error) {
	e, err := session.Target(provider)
	if err != nil {
		return nil, err
	}
	p, ok, err := session.Host.TextPattern(e)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s does not support the text pattern", uitree.ErrInvalidArgument, e)
	}

	switch {
	case src.Range != "":
		span, err := platform.ParseTextRange(src.Range)
		if err != nil {
			return nil, err
		}
		return session.Host.NewRange(span)
	case src.Child != "":
		c, err := session.Target(src.Child)
		if err != nil {
			return nil, err
		}
		return p.RangeFromChild(c)
	case src.At != "":
		pt, err := platform.ParsePoint(src.At)
		if err != nil {
			return nil, err
		}
		return p.RangeFromPoint(pt)
	}
	return p.DocumentRange()
}
