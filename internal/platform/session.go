package platform

import (
	"fmt"

	"github.com/mj1618/a11ytree/internal/a11y"
	"github.com/mj1618/a11ytree/internal/config"
	"github.com/mj1618/a11ytree/internal/describe"
	"github.com/mj1618/a11ytree/internal/input"
	"github.com/mj1618/a11ytree/internal/logger"
	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/uitree"
)

// Session wires one scene to a tree, a client host and a key driver. It is
// not safe for concurrent use.
type Session struct {
	Provider *Provider
	Scene    describe.Scene
	Tree     *uitree.Tree
	Host     *a11y.Host
	Driver   *input.Driver
}

// NewSession builds the tree for scene and runs the first describe pass.
func NewSession(cfg *config.Config, scene describe.Scene, listening bool) (*Session, error) {
	bindings, err := input.ParseBindings(cfg.Keys.Next, cfg.Keys.Prev, cfg.Keys.Activate)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	p := NewProvider(cfg.Viewport, listening)
	tree := uitree.New(
		uitree.WithLogger(logger.L),
		uitree.WithNotifier(p.Events),
		uitree.WithIDBits(cfg.IDBits),
		uitree.WithLayout(uitree.Layout{
			Enabled:    cfg.Layout.Enabled,
			Width:      cfg.Layout.Width,
			LineHeight: cfg.Layout.LineHeight,
			Indent:     cfg.Layout.Indent,
		}),
	)
	s := &Session{
		Provider: p,
		Scene:    scene,
		Tree:     tree,
		Host:     a11y.NewHost(tree, p.Window, a11y.WithName(cfg.AppName), a11y.WithLogger(logger.L)),
		Driver:   input.NewDriver(tree, bindings, logger.L),
	}
	if err := describe.Rebuild(tree, scene); err != nil {
		return nil, err
	}
	logger.Info("session started", "scene", scene.Name(), "nodes", tree.Snapshot().Len())
	return s, nil
}

// OpenScene resolves the scene named by cfg: File wins over Scene.
func OpenScene(cfg *config.Config) (describe.Scene, error) {
	if cfg.File != "" {
		return describe.LoadFile(cfg.File)
	}
	return describe.Builtin(cfg.Scene)
}

// Rebuild runs a describe pass unconditionally.
func (s *Session) Rebuild() error { return describe.Rebuild(s.Tree, s.Scene) }

// Settle re-describes the scene if an action changed it.
func (s *Session) Settle() error { return describe.Settle(s.Tree, s.Scene) }

// Tap sends a key chord through the driver and settles the scene.
func (s *Session) Tap(c input.Chord) (input.Command, error) {
	cmd, err := s.Driver.Tap(c)
	if err != nil {
		return cmd, err
	}
	return cmd, s.Settle()
}

// Invoke activates e through the client contract and settles the scene.
func (s *Session) Invoke(e a11y.Element) error {
	if err := s.Host.Invoke(e); err != nil {
		return err
	}
	return s.Settle()
}

// Elements returns the current snapshot as an element forest with refs.
func (s *Session) Elements() []model.Element {
	els := model.FromSnapshot(s.Tree.Snapshot(), s.Tree.Focused(), s.Provider.Window.Viewport())
	model.GenerateRefs(els)
	return els
}

// Scope returns the element forest rooted at arg. The root yields the whole
// forest.
func (s *Session) Scope(arg string) ([]model.Element, error) {
	elements := s.Elements()
	e, err := s.Target(arg)
	if err != nil {
		return nil, err
	}
	if e.IsRoot() {
		return elements, nil
	}
	found := findElement(elements, e.ID.String())
	if found == nil {
		return nil, fmt.Errorf("element %s: %w", e, uitree.ErrStaleElement)
	}
	return []model.Element{*found}, nil
}

func findElement(elements []model.Element, id string) *model.Element {
	for i := range elements {
		if elements[i].ID == id {
			return &elements[i]
		}
		if found := findElement(elements[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

// ResolveRef finds the element whose ref matches ref.
func (s *Session) ResolveRef(ref string) (a11y.Element, error) {
	el, err := model.FindElementByRef(s.Elements(), ref)
	if err != nil {
		return a11y.Element{}, err
	}
	return a11y.ParseElement(el.ID)
}

// Target parses an element argument: "root", a hex id, or "@ref".
func (s *Session) Target(arg string) (a11y.Element, error) {
	if len(arg) > 1 && arg[0] == '@' {
		return s.ResolveRef(arg[1:])
	}
	return a11y.ParseElement(arg)
}
