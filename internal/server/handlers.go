package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11ytree/internal/a11y"
	"github.com/mj1618/a11ytree/internal/input"
	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/output"
	"github.com/mj1618/a11ytree/internal/platform"
	"github.com/mj1618/a11ytree/internal/uitree"
)

type toolFunc func(params map[string]interface{}) (interface{}, error)

// locked runs fn under the session lock and serializes its result as YAML.
func (s *Server) locked(request mcp.CallToolRequest, fn toolFunc) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := fn(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(yamlText(v)), nil
}

func yamlText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

type rectResult struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func toRect(r uitree.Rect) rectResult {
	return rectResult{X: r.Left, Y: r.Top, Width: r.Width(), Height: r.Height()}
}

type rangeResult struct {
	Handle string           `yaml:"range"`
	Span   uitree.TextRange `yaml:"span"`
}

func (s *Server) target(params map[string]interface{}) (a11y.Element, error) {
	arg, err := requireString(params, "element")
	if err != nil {
		return a11y.Element{}, err
	}
	return s.session.Target(arg)
}

func (s *Server) handleTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		tree := s.session.Tree
		elements := s.session.Elements()

		if scope := StringParam(params, "scope", ""); scope != "" {
			scoped, err := s.session.Scope(scope)
			if err != nil {
				return nil, err
			}
			elements = scoped
		}
		if roles := StringParam(params, "roles", ""); roles != "" {
			elements = model.FilterElements(elements, model.ExpandRoles(strings.Split(roles, ",")), nil)
		}
		if text := StringParam(params, "text", ""); text != "" {
			elements = model.FilterByText(elements, text)
		}
		if BoolParam(params, "focused", false) {
			elements = model.FilterByFocused(elements)
		}

		focused := ""
		if f := tree.Focused(); f != uitree.RootID {
			focused = f.String()
		}
		if BoolParam(params, "flat", false) {
			return output.TreeFlatResult{
				Scene:      s.session.Scene.Name(),
				Generation: tree.Snapshot().Generation(),
				Focused:    focused,
				Elements:   model.FlattenElements(elements),
			}, nil
		}
		return output.TreeResult{
			Scene:      s.session.Scene.Name(),
			Generation: tree.Snapshot().Generation(),
			Focused:    focused,
			Elements:   elements,
		}, nil
	})
}

func (s *Server) handleNavigate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		e, err := s.target(params)
		if err != nil {
			return nil, err
		}
		dir, err := a11y.ParseDirection(StringParam(params, "direction", ""))
		if err != nil {
			return nil, err
		}
		next, ok, err := s.session.Host.Navigate(e, dir)
		if err != nil {
			return nil, err
		}
		if !ok {
			return map[string]interface{}{"found": false}, nil
		}
		return map[string]interface{}{"found": true, "element": next.String()}, nil
	})
}

func (s *Server) handleGetProperty(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		e, err := s.target(params)
		if err != nil {
			return nil, err
		}
		props := a11y.Properties()
		if name := StringParam(params, "property", ""); name != "" {
			p, err := a11y.ParseProperty(name)
			if err != nil {
				return nil, err
			}
			props = []a11y.PropertyID{p}
		}
		out := make(map[string]interface{}, len(props))
		for _, p := range props {
			v, err := s.session.Host.Property(e, p)
			if err != nil {
				return nil, err
			}
			out[p.String()] = v.Any()
		}
		return out, nil
	})
}

func (s *Server) handleBoundingRect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		e, err := s.target(params)
		if err != nil {
			return nil, err
		}
		r, err := s.session.Host.BoundingRect(e)
		if err != nil {
			return nil, err
		}
		return toRect(r), nil
	})
}

func (s *Server) handlePatterns(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		e, err := s.target(params)
		if err != nil {
			return nil, err
		}
		ps, err := s.session.Host.Patterns(e)
		if err != nil {
			return nil, err
		}
		names := make([]string, len(ps))
		for i, p := range ps {
			names[i] = p.String()
		}
		return map[string]interface{}{"patterns": names}, nil
	})
}

func (s *Server) handleInvoke(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		e, err := s.target(params)
		if err != nil {
			return nil, err
		}
		before := model.FlattenElements(s.session.Elements())
		if err := s.session.Invoke(e); err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"invoked":    e.String(),
			"generation": s.session.Tree.Snapshot().Generation(),
			"changes":    model.DiffElements(before, model.FlattenElements(s.session.Elements())),
		}, nil
	})
}

func (s *Server) handleSetFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		e, err := s.target(params)
		if err != nil {
			return nil, err
		}
		if err := s.session.Host.SetFocus(e); err != nil {
			return nil, err
		}
		return map[string]interface{}{"focused": s.session.Host.Focus().String()}, nil
	})
}

func (s *Server) handleGetFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(map[string]interface{}) (interface{}, error) {
		return map[string]interface{}{"focused": s.session.Host.Focus().String()}, nil
	})
}

func (s *Server) handleHitTest(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		p := uitree.Point{X: IntParam(params, "x", 0), Y: IntParam(params, "y", 0)}
		return map[string]interface{}{"element": s.session.Host.HitTest(p).String()}, nil
	})
}

func (s *Server) handleKey(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.locked(request, func(params map[string]interface{}) (interface{}, error) {
		arg, err := requireString(params, "chord")
		if err != nil {
			return nil, err
		}
		chord, err := input.ParseChord(arg)
		if err != nil {
			return nil, err
		}
		s.session.Tree.TakeFocusChanged()
		cmd, err := s.session.Tap(chord)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"command":     cmd.String(),
			"focused":     s.session.Host.Focus().String(),
			"focus_moved": s.session.Tree.TakeFocusChanged(),
		}, nil
	})
}

func (s *Server) handleRender(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mode, err := platform.ParseLabelMode(StringParam(request.GetArguments(), "labels", "names"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	img, err := platform.NewRenderer(mode).Capture(s.session.Elements(), s.session.Provider.Window.Viewport())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var buf bytes.Buffer
	if err := platform.WritePNG(&buf, img); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.ImageContent{
				Type:     "image",
				Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
				MIMEType: "image/png",
			},
		},
	}, nil
}
