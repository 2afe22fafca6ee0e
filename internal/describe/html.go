package describe

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML turns an HTML page into a Document element named after its
// <title>. Text blocks become Text, buttons and links become Buttons, and
// landmark elements with an aria-label become Panes. Other elements are
// transparent: their content joins the enclosing element.
func FromHTML(fallback string, r io.Reader) (*Static, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := fallback
	if t := findFirst(root, atom.Title); t != nil {
		if s := collapse(textContent(t)); s != "" {
			title = s
		}
	}

	body := findFirst(root, atom.Body)
	var children []Node
	if body != nil {
		children = htmlChildren(body)
	}

	uniqueNames(children)
	s := &Static{
		Title: title,
		Nodes: []Node{{Type: "document", Name: title, Children: children}},
	}
	return s, s.Validate()
}

var textBlocks = map[atom.Atom]bool{
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.P: true, atom.Li: true, atom.Td: true, atom.Th: true, atom.Dt: true, atom.Dd: true,
	atom.Label: true, atom.Figcaption: true, atom.Pre: true, atom.Caption: true,
}

var landmarks = map[atom.Atom]bool{
	atom.Section: true, atom.Nav: true, atom.Main: true, atom.Article: true,
	atom.Aside: true, atom.Header: true, atom.Footer: true, atom.Form: true, atom.Div: true,
}

var skipped = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Template: true, atom.Noscript: true, atom.Head: true,
}

func htmlChildren(parent *html.Node) []Node {
	var out []Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, htmlNode(c)...)
	}
	return out
}

func htmlNode(n *html.Node) []Node {
	switch n.Type {
	case html.TextNode:
		if s := collapse(n.Data); s != "" {
			return []Node{{Type: "text", Name: s}}
		}
		return nil
	case html.ElementNode:
	default:
		return nil
	}

	switch {
	case skipped[n.DataAtom] || attr(n, "aria-hidden") == "true":
		return nil
	case n.DataAtom == atom.Button || n.DataAtom == atom.A:
		if s := label(n); s != "" {
			return []Node{{Type: "button", Name: s}}
		}
		return nil
	case textBlocks[n.DataAtom]:
		var out []Node
		if s := collapse(textContent(n)); s != "" {
			out = append(out, Node{Type: "text", Name: s})
		}
		for _, l := range findAll(n, atom.A, atom.Button) {
			if s := label(l); s != "" {
				out = append(out, Node{Type: "button", Name: s})
			}
		}
		return out
	case landmarks[n.DataAtom] && attr(n, "aria-label") != "":
		return []Node{{Type: "pane", Name: attr(n, "aria-label"), Children: htmlChildren(n)}}
	}
	return htmlChildren(n)
}

func label(n *html.Node) string {
	if s := attr(n, "aria-label"); s != "" {
		return s
	}
	return collapse(textContent(n))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	stack := []*html.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Type == html.TextNode {
			sb.WriteString(cur.Data)
			sb.WriteByte(' ')
			continue
		}
		if cur.Type == html.ElementNode && skipped[cur.DataAtom] {
			continue
		}
		for c := cur.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return sb.String()
}

func collapse(s string) string { return strings.Join(strings.Fields(s), " ") }

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if found := findAll(n, a); len(found) > 0 {
		return found[0]
	}
	return nil
}

// findAll returns descendants of n with any of the given atoms, in document
// order, without descending into matches.
func findAll(n *html.Node, atoms ...atom.Atom) []*html.Node {
	var out []*html.Node
	stack := []*html.Node{}
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		stack = append(stack, c)
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Type == html.ElementNode && matchAtom(cur.DataAtom, atoms) {
			out = append(out, cur)
			continue
		}
		for c := cur.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return out
}

func matchAtom(a atom.Atom, atoms []atom.Atom) bool {
	for _, want := range atoms {
		if a == want {
			return true
		}
	}
	return false
}
