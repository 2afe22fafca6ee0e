package describe

import (
	"testing"

	"github.com/mj1618/a11ytree/internal/uitree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childNames(s *Static) []string {
	var out []string
	for _, c := range s.Nodes[0].Children {
		out = append(out, c.Type+":"+c.Name)
	}
	return out
}

func TestFromMarkdown(t *testing.T) {
	src := []byte(`# Release notes

Hello, Dreamer of dreams.
Second line.

## Changes

- Faster *focus* moves
- See [the guide](https://example.com/guide)

` + "```" + `
a11ytree tree
` + "```" + `
`)
	scene, err := FromMarkdown("fallback", src)
	require.NoError(t, err)
	assert.Equal(t, "Release notes", scene.Name())
	assert.Equal(t, "document", scene.Nodes[0].Type)
	assert.Equal(t, []string{
		"text:Hello, Dreamer of dreams. Second line.",
		"text:Changes",
		"text:Faster focus moves",
		"text:See the guide",
		"button:the guide",
		"text:a11ytree tree",
	}, childNames(scene))
}

func TestFromMarkdownFallbackTitleAndDuplicates(t *testing.T) {
	scene, err := FromMarkdown("notes", []byte("Same\n\nSame\n"))
	require.NoError(t, err)
	assert.Equal(t, "notes", scene.Name())
	assert.Equal(t, []string{"text:Same", "text:Same (2)"}, childNames(scene))
}

func TestFromMarkdownSuffixedDuplicatesDescribe(t *testing.T) {
	scene, err := FromMarkdown("notes", []byte("# T\n\nA\n\nA\n\nA (2)\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"text:A", "text:A (3)", "text:A (2)"}, childNames(scene))
	require.NoError(t, Rebuild(uitree.New(), scene))
}
