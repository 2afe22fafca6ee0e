package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mj1618/a11ytree/internal/model"
)

var (
	accent     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))
	accentBold = accent.Bold(true)
	muted      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// SetAccent changes the highlight color of the tree format. c is an ANSI
// color code or a "#RRGGBB" hex color.
func SetAccent(c string) {
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	accentBold = accent.Bold(true)
}

// IsOutputPiped reports whether stdout is not a terminal.
func IsOutputPiped() bool {
	return !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// RenderTree renders elements as an indented outline. The focused element
// is marked with "*". When styled is false no escape codes are emitted.
func RenderTree(elements []model.Element, styled bool) string {
	var b strings.Builder
	for i, el := range elements {
		writeNode(&b, el, "", i == len(elements)-1, styled)
	}
	return b.String()
}

// WriteTree writes RenderTree output to w.
func WriteTree(w io.Writer, elements []model.Element, styled bool) error {
	_, err := io.WriteString(w, RenderTree(elements, styled))
	return err
}

// WriteFlat writes one line per flat element: id, path and title.
func WriteFlat(w io.Writer, elements []model.FlatElement) error {
	for _, el := range elements {
		mark := " "
		if el.Focused {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %-16s %-24s %q\n", mark, el.ID, el.Path, el.Title); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(b *strings.Builder, el model.Element, prefix string, last, styled bool) {
	branch, next := "├── ", "│   "
	if last {
		branch, next = "└── ", "    "
	}

	role, id, title := el.Role, el.ID, fmt.Sprintf("%q", el.Title)
	if styled {
		role = muted.Render(role)
		id = muted.Render(id)
		if el.Focused {
			title = accentBold.Render(title)
		} else if len(el.Actions) > 0 {
			title = accent.Render(title)
		}
	}

	b.WriteString(prefix)
	b.WriteString(branch)
	if el.Focused {
		b.WriteString("* ")
	}
	fmt.Fprintf(b, "%s %s %s", role, title, id)
	if el.TextLen > 0 {
		fmt.Fprintf(b, " n=%d", el.TextLen)
	}
	if el.Ref != "" {
		fmt.Fprintf(b, " @%s", el.Ref)
	}
	b.WriteByte('\n')

	for i, c := range el.Children {
		writeNode(b, c, prefix+next, i == len(el.Children)-1, styled)
	}
}
