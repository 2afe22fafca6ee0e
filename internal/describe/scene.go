// Package describe supplies describe passes for a uitree.Tree: built-in
// scenes and scenes loaded from YAML, Markdown or HTML files.
package describe

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mj1618/a11ytree/internal/uitree"
)

// Scene describes a user interface into a Builder.
type Scene interface {
	Name() string
	Describe(b *uitree.Builder)
}

// Stateful scenes change in response to actions and must be described again
// while Dirty reports true.
type Stateful interface {
	Scene
	Dirty() bool
}

// maxSettle bounds the re-describe loop of a stateful scene.
const maxSettle = 8

// Rebuild describes s into t, repeating while a stateful scene reports
// further changes.
func Rebuild(t *uitree.Tree, s Scene) error {
	for i := 0; i < maxSettle; i++ {
		if err := t.Describe(s.Describe); err != nil {
			return fmt.Errorf("describe %s: %w", s.Name(), err)
		}
		st, ok := s.(Stateful)
		if !ok || !st.Dirty() {
			return nil
		}
	}
	return fmt.Errorf("describe %s: scene did not settle after %d passes", s.Name(), maxSettle)
}

// Settle re-describes s if an action left it dirty.
func Settle(t *uitree.Tree, s Scene) error {
	if st, ok := s.(Stateful); ok && st.Dirty() {
		return Rebuild(t, s)
	}
	return nil
}

var builtins = map[string]func() Scene{
	"srfirst": func() Scene { return &SRFirst{} },
	"todo":    func() Scene { return NewTodo("Buy milk", "Write report", "Call the plumber") },
}

// Names lists the built-in scenes.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a fresh instance of a built-in scene.
func Builtin(name string) (Scene, error) {
	mk, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}

// LoadFile loads a scene description, choosing the format by extension.
func LoadFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".md", ".markdown":
		return FromMarkdown(base, data)
	case ".html", ".htm":
		return FromHTML(base, strings.NewReader(string(data)))
	}
	return nil, fmt.Errorf("unsupported scene file %s (use .yaml, .md or .html)", path)
}
