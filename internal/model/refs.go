package model

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

const maxSlugLen = 40

// slugify converts a label to a lowercase, hyphenated ref segment.
func slugify(s string) string {
	out := slug.Make(s)
	if len(out) > maxSlugLen {
		out = strings.TrimRight(out[:maxSlugLen], "-")
	}
	return out
}

// isLandmark reports whether el names a segment in the ref path of its
// descendants. Only named containers qualify.
func isLandmark(el Element) bool {
	return (el.Role == "pane" || el.Role == "doc") && slugify(el.Title) != ""
}

// refSegment returns the path segment for an element.
func refSegment(el Element) string {
	if s := slugify(el.Title); s != "" {
		return s
	}
	return el.Role
}

// isInteresting reports whether el gets a ref: buttons, text nodes and
// named containers.
func isInteresting(el Element) bool {
	if isLandmark(el) {
		return true
	}
	for _, a := range el.Actions {
		if a == "invoke" {
			return true
		}
	}
	return el.Role == "btn" || el.Role == "txt"
}

// GenerateRefs walks the element tree and populates the Ref field on each
// interesting element. Refs look like "todo/tasks/buy-milk" and stay valid
// across rebuilds as long as names do not change.
func GenerateRefs(elements []Element) {
	generateRefsRecursive(elements, "")
	deduplicateRefs(elements)
}

func generateRefsRecursive(elements []Element, parentPath string) {
	for i := range elements {
		el := &elements[i]

		childPath := parentPath
		if isLandmark(*el) {
			childPath = joinRef(parentPath, refSegment(*el))
		}
		if isInteresting(*el) {
			el.Ref = joinRef(parentPath, refSegment(*el))
		}
		generateRefsRecursive(el.Children, childPath)
	}
}

func joinRef(parent, seg string) string {
	if parent == "" {
		return seg
	}
	return parent + "/" + seg
}

// deduplicateRefs appends .1, .2 suffixes to refs shared by several elements.
func deduplicateRefs(elements []Element) {
	refCounts := make(map[string][]*Element)
	collectRefs(elements, refCounts)

	for ref, elems := range refCounts {
		if len(elems) <= 1 {
			continue
		}
		for i, el := range elems {
			el.Ref = fmt.Sprintf("%s.%d", ref, i+1)
		}
	}
}

func collectRefs(elements []Element, refCounts map[string][]*Element) {
	for i := range elements {
		if elements[i].Ref != "" {
			refCounts[elements[i].Ref] = append(refCounts[elements[i].Ref], &elements[i])
		}
		collectRefs(elements[i].Children, refCounts)
	}
}

type refEntry struct {
	ref string
	el  *Element
}

// FindElementByRef searches a ref-populated element tree for ref. An exact
// match wins; otherwise a unique suffix match on a path boundary is accepted.
func FindElementByRef(elements []Element, ref string) (*Element, error) {
	var entries []refEntry
	collectRefEntries(elements, &entries)

	for _, e := range entries {
		if e.ref == ref {
			return e.el, nil
		}
	}

	var matches []refEntry
	for _, e := range entries {
		if strings.HasSuffix(e.ref, "/"+ref) {
			matches = append(matches, e)
		}
	}

	if len(matches) == 1 {
		return matches[0].el, nil
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no element matches ref %q", ref)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "multiple elements match ref %q:\n", ref)
	for _, m := range matches {
		fmt.Fprintf(&b, "  ref=%q id=%s %s", m.ref, m.el.ID, m.el.Role)
		if m.el.Title != "" {
			fmt.Fprintf(&b, " title=%q", m.el.Title)
		}
		fmt.Fprintln(&b)
	}
	return nil, fmt.Errorf("%s", b.String())
}

func collectRefEntries(elements []Element, entries *[]refEntry) {
	for i := range elements {
		if elements[i].Ref != "" {
			*entries = append(*entries, refEntry{ref: elements[i].Ref, el: &elements[i]})
		}
		collectRefEntries(elements[i].Children, entries)
	}
}
