package describe

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FromMarkdown turns a Markdown document into a Document element. Headings,
// paragraphs, list items and code blocks become Text; links become Buttons
// placed after the block that contains them. The first level-one heading
// names the document, otherwise fallback does.
func FromMarkdown(fallback string, src []byte) (*Static, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	title := fallback
	var children []Node
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			s := inlineText(node, src)
			if node.Level == 1 && title == fallback && s != "" {
				title = s
				return ast.WalkSkipChildren, nil
			}
			children = appendBlock(children, node, s, src)
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			children = appendBlock(children, node, inlineText(node, src), src)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			children = appendText(children, codeText(node, src))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			children = appendText(children, codeText(node, src))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	uniqueNames(children)
	s := &Static{
		Title: title,
		Nodes: []Node{{Type: "document", Name: title, Children: children}},
	}
	return s, s.Validate()
}

func appendText(nodes []Node, s string) []Node {
	if s == "" {
		return nodes
	}
	return append(nodes, Node{Type: "text", Name: s})
}

// appendBlock adds the block's text followed by one Button per link.
func appendBlock(nodes []Node, block ast.Node, s string, src []byte) []Node {
	nodes = appendText(nodes, s)
	_ = ast.Walk(block, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch link := n.(type) {
		case *ast.Link:
			if label := inlineText(link, src); label != "" {
				nodes = append(nodes, Node{Type: "button", Name: label})
			}
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			nodes = append(nodes, Node{Type: "button", Name: string(link.Label(src))})
		}
		return ast.WalkContinue, nil
	})
	return nodes
}

// inlineText flattens the inline content of n, turning soft line breaks
// into spaces.
func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.AutoLink:
			sb.Write(t.Label(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func codeText(n ast.Node, src []byte) string {
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, strings.TrimRight(string(seg.Value(src)), "\n"))
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
